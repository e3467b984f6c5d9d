package controllers

import (
	"github.com/gin-gonic/gin"

	"placedex/internal/models/db_models"
	"placedex/internal/services"
	"placedex/pkg/utils"
)

type TagsController struct {
	tagService services.TagServiceInterface
}

func NewTagsController(tagService services.TagServiceInterface) *TagsController {
	return &TagsController{
		tagService: tagService,
	}
}

// ListCategoryTagsHandler returns the tag vocabulary for a category.
func (tc *TagsController) ListCategoryTagsHandler(c *gin.Context) {
	category := c.DefaultQuery("category", db_models.CategoryAll)

	tags, err := tc.tagService.VocabularyForCategory(c.Request.Context(), category)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tags, "Fetched tags successfully")
}
