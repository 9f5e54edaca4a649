package favorite

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/enzogallo/sportsmatch-api/internal/middleware"
	"github.com/enzogallo/sportsmatch-api/internal/offer"
	"github.com/enzogallo/sportsmatch-api/internal/user"
	"github.com/enzogallo/sportsmatch-api/pkg/responses"
	"github.com/enzogallo/sportsmatch-api/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FavoriteController struct {
	repo      FavoriteRepository
	offerRepo offer.OfferRepository
	userRepo  user.UserRepository
}

func NewFavoriteController(repo FavoriteRepository, offerRepo offer.OfferRepository, userRepo user.UserRepository) *FavoriteController {
	return &FavoriteController{repo: repo, offerRepo: offerRepo, userRepo: userRepo}
}

// @Summary      List favorites
// @Description  The authenticated user's bookmarks, optionally filtered by type, with hydrated items.
// @Tags         Favorites
// @Security     BearerAuth
// @Produce      json
// @Param        type query string false "offer, player or club"
// @Success      200 {object} map[string]interface{} "favorites"
// @Router       /favorites [get]
func (fc *FavoriteController) ListFavorites(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	itemType := ItemType(c.Query("type"))
	if itemType != "" && !itemType.Valid() {
		responses.BadRequest(c, fmt.Sprintf("unknown favorite type %q", itemType))
		return
	}

	favs, err := fc.repo.List(userID, itemType)
	if err != nil {
		responses.InternalServerError(c, "Failed to fetch favorites")
		return
	}

	results := make([]FavoriteResponse, 0, len(favs))
	for i := range favs {
		f := &favs[i]
		resp := FavoriteResponse{
			ID:        f.ID,
			ItemType:  f.ItemType,
			ItemID:    f.ItemID,
			CreatedAt: f.CreatedAt,
		}
		resp.Item = fc.hydrate(f)
		results = append(results, resp)
	}

	c.JSON(http.StatusOK, gin.H{"favorites": results})
}

// hydrate loads the favorited item's public projection. Deleted targets
// yield nil rather than an error, so stale bookmarks stay listable.
func (fc *FavoriteController) hydrate(f *Favorite) interface{} {
	switch f.ItemType {
	case ItemOffer:
		o, err := fc.offerRepo.GetByID(f.ItemID)
		if err != nil {
			return nil
		}
		return offer.FilterOfferRecord(o)
	case ItemPlayer, ItemClub:
		u, err := fc.userRepo.GetUserByID(f.ItemID)
		if err != nil {
			return nil
		}
		pub := user.FilterPublicUserRecord(u)
		return pub
	}
	return nil
}

// @Summary      Add favorite
// @Description  Idempotent: saving an already-saved item succeeds without duplicating it.
// @Tags         Favorites
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body AddFavoriteRequest true "Item to save"
// @Success      201 {object} map[string]interface{} "favorite"
// @Failure      400 {object} responses.ErrorResponse
// @Router       /favorites [post]
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	var req AddFavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.BadRequest(c, "Invalid input: "+err.Error())
		return
	}
	if !req.ItemType.Valid() {
		responses.BadRequest(c, fmt.Sprintf("unknown favorite type %q", req.ItemType))
		return
	}

	if err := fc.checkTarget(req.ItemType, req.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			responses.NotFound(c, "Item")
			return
		}
		responses.InternalServerError(c, "Failed to verify item")
		return
	}

	f := &Favorite{UserID: userID, ItemType: req.ItemType, ItemID: req.ItemID}
	if err := fc.repo.Add(f); err != nil {
		responses.InternalServerError(c, "Could not save favorite")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Favorite saved",
		"favorite": gin.H{"item_type": req.ItemType, "item_id": req.ItemID},
	})
}

// checkTarget verifies the favorited item exists and matches the declared
// type.
func (fc *FavoriteController) checkTarget(itemType ItemType, itemID uint) error {
	switch itemType {
	case ItemOffer:
		_, err := fc.offerRepo.GetByID(itemID)
		return err
	case ItemPlayer, ItemClub:
		u, err := fc.userRepo.GetUserByID(itemID)
		if err != nil {
			return err
		}
		if (itemType == ItemPlayer && u.Role != user.RolePlayer) ||
			(itemType == ItemClub && u.Role != user.RoleClub) {
			return gorm.ErrRecordNotFound
		}
		return nil
	}
	return gorm.ErrRecordNotFound
}

// @Summary      Remove favorite
// @Description  Deletes one bookmark. Removing an absent bookmark returns 404.
// @Tags         Favorites
// @Security     BearerAuth
// @Produce      json
// @Param        type path string true "offer, player or club"
// @Param        id   path int    true "Item ID"
// @Success      200 {object} map[string]interface{} "message"
// @Failure      404 {object} responses.ErrorResponse
// @Router       /favorites/{type}/{id} [delete]
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	itemType := ItemType(c.Param("type"))
	if !itemType.Valid() {
		responses.BadRequest(c, fmt.Sprintf("unknown favorite type %q", itemType))
		return
	}
	itemID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	removed, err := fc.repo.Remove(userID, itemType, itemID)
	if err != nil {
		responses.InternalServerError(c, "Could not remove favorite")
		return
	}
	if removed == 0 {
		responses.NotFound(c, "Favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
}

// @Summary      Check favorite
// @Description  Reports whether the authenticated user saved this item.
// @Tags         Favorites
// @Security     BearerAuth
// @Produce      json
// @Param        type path string true "offer, player or club"
// @Param        id   path int    true "Item ID"
// @Success      200 {object} map[string]interface{} "is_favorite"
// @Router       /favorites/check/{type}/{id} [get]
func (fc *FavoriteController) CheckFavorite(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		responses.Unauthorized(c, err.Error())
		return
	}

	itemType := ItemType(c.Param("type"))
	if !itemType.Valid() {
		responses.BadRequest(c, fmt.Sprintf("unknown favorite type %q", itemType))
		return
	}
	itemID, err := utils.ParseUintParam(c, "id")
	if err != nil {
		responses.BadRequest(c, err.Error())
		return
	}

	exists, err := fc.repo.Exists(userID, itemType, itemID)
	if err != nil {
		responses.InternalServerError(c, "Could not check favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_favorite": exists})
}
