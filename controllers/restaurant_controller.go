// controllers/restaurant_controller.go
package controllers

import (
	"strconv"

	"github.com/basiljilani/Foodo-admin/forms"
	"github.com/basiljilani/Foodo-admin/pkg/resp"
	"github.com/basiljilani/Foodo-admin/query"
	"github.com/basiljilani/Foodo-admin/services"
	"github.com/basiljilani/Foodo-admin/uploads"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	Service  *services.CatalogService
	Uploader *uploads.Uploader
}

func NewRestaurantController(s *services.CatalogService, u *uploads.Uploader) *RestaurantController {
	return &RestaurantController{Service: s, Uploader: u}
}

// restaurantRequest mirrors the console form: rating arrives as the raw
// input string, an image rides along as a base64 data URL.
type restaurantRequest struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	OpeningHours  string   `json:"openingHours"`
	Category      string   `json:"category"`
	PriceRange    string   `json:"priceRange"`
	Tags          []string `json:"tags"`
	Rating        string   `json:"rating"`
	Featured      bool     `json:"featured"`
	Distance      string   `json:"distance"`
	EstimatedTime string   `json:"estimatedTime"`
	ImageData     string   `json:"imageData"`
	ImageName     string   `json:"imageName"`
}

func (r *restaurantRequest) apply(f *forms.RestaurantForm) error {
	f.Name = r.Name
	f.Description = r.Description
	f.OpeningHours = r.OpeningHours
	f.Category = r.Category
	f.PriceRange = r.PriceRange
	f.Tags = nil
	for _, t := range r.Tags {
		f.ToggleTag(t)
	}
	if r.Rating != "" {
		f.SetRating(r.Rating)
	}
	f.Featured = r.Featured
	f.Distance = r.Distance
	f.EstimatedTime = r.EstimatedTime
	if r.ImageData != "" {
		return f.StageImageDataURL(r.ImageName, r.ImageData)
	}
	return nil
}

// GET /restaurants?search=&category=
func (ctl *RestaurantController) List(c *gin.Context) {
	rests, err := ctl.Service.List(query.RestaurantFilter{
		Text:     c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// GET /restaurants/:id
func (ctl *RestaurantController) Get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	rest, err := ctl.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /restaurants
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.NewRestaurantForm(ctl.Uploader)
	if err := req.apply(form); err != nil {
		fail(c, err)
		return
	}
	rest, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := ctl.Service.Create(rest); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, rest)
}

// PATCH /restaurants/:id
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	existing, err := ctl.Service.Get(uint(id))
	if err != nil {
		fail(c, err)
		return
	}

	var req restaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.EditRestaurantForm(ctl.Uploader, existing)
	if err := req.apply(form); err != nil {
		fail(c, err)
		return
	}
	rest, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := ctl.Service.Update(rest); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurants/:id
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.Service.Delete(uint(id)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant deleted"})
}
