// controllers/offer_controller.go
package controllers

import (
	"strconv"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/forms"
	"github.com/basiljilani/Foodo-admin/pkg/resp"
	"github.com/basiljilani/Foodo-admin/services"
	"github.com/gin-gonic/gin"
)

type OfferController struct {
	Service *services.OfferService
}

func NewOfferController(s *services.OfferService) *OfferController {
	return &OfferController{Service: s}
}

type offerRequest struct {
	Title      string `json:"title"`
	Code       string `json:"code"`
	Discount   string `json:"discount"`
	ValidUntil string `json:"validUntil"`
	Type       string `json:"type"`
	Status     string `json:"status"`
}

func (r *offerRequest) apply(f *forms.OfferForm) {
	f.Title = r.Title
	f.Code = r.Code
	f.Discount = r.Discount
	f.ValidUntil = r.ValidUntil
	if r.Type != "" {
		f.Type = entity.OfferType(r.Type)
	}
	if r.Status != "" {
		f.Status = entity.OfferStatus(r.Status)
	}
}

// GET /offers
func (ctl *OfferController) List(c *gin.Context) {
	offers, err := ctl.Service.List()
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": offers, "copiedCode": ctl.Service.CopiedCode()})
}

// POST /offers
func (ctl *OfferController) Create(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.NewOfferForm()
	req.apply(form)
	offer, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := ctl.Service.Create(offer); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, offer)
}

// PATCH /offers/:id
func (ctl *OfferController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	existing, err := ctl.Service.Repo.FindByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.EditOfferForm(existing)
	req.apply(form)
	offer, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	offer.UsageCount = existing.UsageCount
	if err := ctl.Service.Update(offer); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, offer)
}

// DELETE /offers/:id
func (ctl *OfferController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "offer deleted"})
}

// POST /offers/:id/copy
func (ctl *OfferController) CopyCode(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	offer, err := ctl.Service.Repo.FindByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	ctl.Service.CopyCode(offer.Code)
	resp.OK(c, gin.H{"copied": offer.Code})
}
