// controllers/menu_controller.go
package controllers

import (
	"strconv"

	"github.com/basiljilani/Foodo-admin/entity"
	"github.com/basiljilani/Foodo-admin/forms"
	"github.com/basiljilani/Foodo-admin/pkg/resp"
	"github.com/basiljilani/Foodo-admin/query"
	"github.com/basiljilani/Foodo-admin/repository"
	"github.com/basiljilani/Foodo-admin/services"
	"github.com/basiljilani/Foodo-admin/uploads"
	"github.com/gin-gonic/gin"
)

// MenuController manages one restaurant's menu sections and items, plus
// the cross-restaurant item search the console's Menus page uses.
type MenuController struct {
	Restaurants *repository.RestaurantRepository
	Categories  *repository.CategoryRepository
	Items       *repository.MenuItemRepository
	Uploader    *uploads.Uploader
}

func NewMenuController(restRepo *repository.RestaurantRepository, catRepo *repository.CategoryRepository, itemRepo *repository.MenuItemRepository, u *uploads.Uploader) *MenuController {
	return &MenuController{Restaurants: restRepo, Categories: catRepo, Items: itemRepo, Uploader: u}
}

func (ctl *MenuController) manager(c *gin.Context) *services.MenuService {
	restID, _ := strconv.Atoi(c.Param("id"))
	return services.NewMenuService(ctl.Restaurants, ctl.Categories, ctl.Items, uint(restID))
}

type categoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder string `json:"displayOrder"`
}

type menuItemRequest struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           string   `json:"price"`
	CategoryID      uint     `json:"categoryId"`
	IsAvailable     *bool    `json:"isAvailable"`
	PreparationTime string   `json:"preparationTime"`
	Allergens       []string `json:"allergens"`
	SpicyLevel      string   `json:"spicyLevel"`
	IsVegetarian    bool     `json:"isVegetarian"`
	IsVegan         bool     `json:"isVegan"`
	ImageData       string   `json:"imageData"`
	ImageName       string   `json:"imageName"`
}

func (r *menuItemRequest) apply(f *forms.MenuItemForm) error {
	f.Name = r.Name
	f.Description = r.Description
	f.SetPrice(r.Price)
	f.CategoryID = r.CategoryID
	if r.IsAvailable != nil {
		f.IsAvailable = *r.IsAvailable
	}
	f.PreparationTime = r.PreparationTime
	f.Allergens = nil
	for _, a := range r.Allergens {
		f.ToggleAllergen(a)
	}
	if r.SpicyLevel != "" {
		f.SpicyLevel = entity.SpicyLevel(r.SpicyLevel)
	}
	f.IsVegetarian = r.IsVegetarian
	f.IsVegan = r.IsVegan
	if r.ImageData != "" {
		return f.StageImageDataURL(r.ImageName, r.ImageData)
	}
	return nil
}

// GET /restaurants/:id/menu?search=&categoryId=
func (ctl *MenuController) Menu(c *gin.Context) {
	svc := ctl.manager(c)
	cats, err := svc.CategoryList()
	if err != nil {
		fail(c, err)
		return
	}
	items, err := svc.ItemList()
	if err != nil {
		fail(c, err)
		return
	}

	catID, _ := strconv.Atoi(c.Query("categoryId"))
	items = query.MenuItems(items, query.MenuItemFilter{
		Text:       c.Query("search"),
		CategoryID: uint(catID),
	})
	resp.OK(c, gin.H{"categories": cats, "items": items})
}

// GET /menu-items?search=&restaurant=&categoryId=
func (ctl *MenuController) SearchItems(c *gin.Context) {
	items, err := ctl.Items.FindAll()
	if err != nil {
		fail(c, err)
		return
	}
	catID, _ := strconv.Atoi(c.Query("categoryId"))
	items = query.MenuItems(items, query.MenuItemFilter{
		Text:       c.Query("search"),
		CategoryID: uint(catID),
		Restaurant: c.Query("restaurant"),
	})
	resp.OK(c, gin.H{"items": items})
}

// POST /restaurants/:id/categories
func (ctl *MenuController) CreateCategory(c *gin.Context) {
	svc := ctl.manager(c)

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.NewCategoryForm(svc.RestaurantID)
	form.Name = req.Name
	form.Description = req.Description
	form.SetDisplayOrder(req.DisplayOrder)

	cat, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := svc.AddCategory(cat); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, cat)
}

// PATCH /restaurants/:id/categories/:categoryId
func (ctl *MenuController) UpdateCategory(c *gin.Context) {
	svc := ctl.manager(c)
	catID, _ := strconv.Atoi(c.Param("categoryId"))
	existing, err := ctl.Categories.FindByID(uint(catID))
	if err != nil {
		fail(c, err)
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.EditCategoryForm(existing)
	form.Name = req.Name
	form.Description = req.Description
	form.SetDisplayOrder(req.DisplayOrder)

	cat, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := svc.UpdateCategory(cat); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, cat)
}

// DELETE /restaurants/:id/categories/:categoryId
func (ctl *MenuController) DeleteCategory(c *gin.Context) {
	svc := ctl.manager(c)
	catID, _ := strconv.Atoi(c.Param("categoryId"))
	if err := svc.DeleteCategory(uint(catID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "category deleted"})
}

// POST /restaurants/:id/menu-items
func (ctl *MenuController) CreateItem(c *gin.Context) {
	svc := ctl.manager(c)

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.NewMenuItemForm(ctl.Uploader, svc.RestaurantID)
	if err := req.apply(form); err != nil {
		fail(c, err)
		return
	}
	item, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := svc.AddItem(item); err != nil {
		fail(c, err)
		return
	}
	resp.Created(c, item)
}

// PATCH /restaurants/:id/menu-items/:itemId
func (ctl *MenuController) UpdateItem(c *gin.Context) {
	svc := ctl.manager(c)
	itemID, _ := strconv.Atoi(c.Param("itemId"))
	existing, err := ctl.Items.FindByID(uint(itemID))
	if err != nil {
		fail(c, err)
		return
	}

	var req menuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	form := forms.EditMenuItemForm(ctl.Uploader, existing)
	if err := req.apply(form); err != nil {
		fail(c, err)
		return
	}
	item, err := form.Submit(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	if err := svc.UpdateItem(item); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /restaurants/:id/menu-items/:itemId
func (ctl *MenuController) DeleteItem(c *gin.Context) {
	svc := ctl.manager(c)
	itemID, _ := strconv.Atoi(c.Param("itemId"))
	if err := svc.DeleteItem(uint(itemID)); err != nil {
		fail(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "menu item deleted"})
}
