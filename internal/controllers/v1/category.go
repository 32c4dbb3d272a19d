package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notekeeper/backend/internal/auth"
	"github.com/notekeeper/backend/internal/httputil"
	"github.com/notekeeper/backend/internal/models"
	"github.com/notekeeper/backend/internal/presets"
	"gorm.io/gorm"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", GetCategories)
		r.POST("", CreateCategory)
	}

	// Bulk operations
	{
		r.OPTIONS("/init", OptionsCategoryInit)
		r.POST("/init", InitCategories)
		r.OPTIONS("/reorder", OptionsCategoryReorder)
		r.POST("/reorder", ReorderCategories)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.PATCH("/:id", UpdateCategory)
		r.PUT("/:id", UpdateCategory)
		r.DELETE("/:id", DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/init [options]
func OptionsCategoryInit(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/reorder [options]
func OptionsCategoryReorder(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Param			id	path	string	true	"ID of the category"
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsUpdateDelete(c)
}

// @Summary		List categories
// @Description	Returns the caller's categories, ordered by sort order, then name
// @Tags			Categories
// @Produce		json
// @Success		200	{array}		models.Category
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	user := auth.UserFromContext(c)

	categories := make([]models.Category, 0)
	err := models.DB.
		Where(&models.Category{UserID: user.ID}).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Create category
// @Description	Creates a new category for the caller
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		405			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func CreateCategory(c *gin.Context) {
	if presetsOnly() {
		c.JSON(http.StatusMethodNotAllowed, httpError{Error: errCategoriesPresetsOnly.Error()})
		return
	}

	user := auth.UserFromContext(c)

	var editable CategoryEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	category := editable.model(user.ID)
	err = models.DB.Create(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary		Update category
// @Description	Updates an existing category. Only values to be updated need to be specified.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{object}	httpError
// @Failure		401			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		410			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	if presetsOnly() {
		c.JSON(http.StatusGone, httpError{Error: errCategoryEditingDisabled.Error()})
		return
	}

	user := auth.UserFromContext(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// The (id, userId) scope is the only authorization check: a category
	// that exists but belongs to someone else is reported as not found
	var category models.Category
	err = models.DB.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CategoryEditable{})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var data CategoryEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Model(&category).Select("", updateFields...).Updates(data.model(user.ID)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Delete category
// @Description	Deletes a category. Notes referencing it keep existing without a category.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	OkResponse
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		410	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	if presetsOnly() {
		c.JSON(http.StatusGone, httpError{Error: errCategoryDeletionDisabled.Error()})
		return
	}

	user := auth.UserFromContext(c)

	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var category models.Category
	err = models.DB.First(&category, "id = ? AND user_id = ?", uri.ID.UUID, user.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// Notes referencing the category are detached, not deleted
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&models.Note{}).
			Where("category_id = ? AND user_id = ?", category.ID, user.ID).
			Update("category_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&category).Error
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, OkResponse{Ok: true})
}

// @Summary		Seed preset categories
// @Description	Creates all preset categories the caller does not have yet. Presets the caller already has are left untouched, re-invocation is safe.
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	InitResponse
// @Failure		401	{object}	httpError
// @Failure		410	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/categories/init [post]
func InitCategories(c *gin.Context) {
	if presetsOnly() {
		c.JSON(http.StatusGone, httpError{Error: errCategoryInitDisabled.Error()})
		return
	}

	user := auth.UserFromContext(c)

	var existing []models.Category
	err := models.DB.Where(&models.Category{UserID: user.ID}).Find(&existing).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	haveName := make(map[string]bool, len(existing))
	for _, category := range existing {
		haveName[category.Name] = true
	}

	var missing []presets.Category
	for _, preset := range presets.Catalog() {
		if !haveName[preset.Name] {
			missing = append(missing, preset)
		}
	}

	if len(missing) == 0 {
		c.JSON(http.StatusOK, InitResponse{Created: 0})
		return
	}

	// Seed all missing presets or none, with the sort order continuing
	// after the existing categories
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		sortOrder := len(existing)
		for _, preset := range missing {
			category := models.Category{
				UserID:    user.ID,
				Name:      preset.Name,
				Color:     preset.Color,
				Icon:      preset.Icon,
				SortOrder: sortOrder,
			}

			if err := tx.Create(&category).Error; err != nil {
				return err
			}
			sortOrder++
		}

		return nil
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, InitResponse{Created: len(missing)})
}

// @Summary		Reorder categories
// @Description	Writes the position of every category ID in the order list to its sort order. Categories not in the list are left untouched.
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		200		{object}	OkResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		410		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			order	body		ReorderEditable	true	"Category IDs in their new order"
// @Router			/v1/categories/reorder [post]
func ReorderCategories(c *gin.Context) {
	if presetsOnly() {
		c.JSON(http.StatusGone, httpError{Error: errCategoryReorderDisabled.Error()})
		return
	}

	user := auth.UserFromContext(c)

	var data ReorderEditable
	err := httputil.BindData(c, &data)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	// All sort order writes are applied atomically. IDs the caller does not
	// own update nothing, identical to the single resource endpoints.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for position, id := range data.Order {
			err := tx.Model(&models.Category{}).
				Where("id = ? AND user_id = ?", id, user.ID).
				Update("sort_order", position).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, OkResponse{Ok: true})
}
