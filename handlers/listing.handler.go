package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/IrfanulM/MyBNB/domain"
	"github.com/IrfanulM/MyBNB/services"
)

type ListingHandler struct {
	listingService services.ListingService
	logger         *logrus.Logger
}

func NewListingHandler(listingService services.ListingService, logger *logrus.Logger) ListingHandler {
	return ListingHandler{listingService, logger}
}

// InitialListings serves the bounded random sample shown on first load.
func (lh *ListingHandler) InitialListings(ctx *gin.Context) {
	listings, err := lh.listingService.InitialListings(ctx.Request.Context())
	if err != nil {
		lh.internalError(ctx, "initial listings", err)
		return
	}
	ctx.JSON(http.StatusOK, listings)
}

func (lh *ListingHandler) Search(ctx *gin.Context) {
	var request domain.SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	listings, err := lh.listingService.Search(ctx.Request.Context(), request.Filter())
	if err != nil {
		lh.internalError(ctx, "search", err)
		return
	}
	ctx.JSON(http.StatusOK, listings)
}

func (lh *ListingHandler) GetListingByID(ctx *gin.Context) {
	listing, err := lh.listingService.GetListingByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		lh.internalError(ctx, "get listing", err)
		return
	}
	ctx.JSON(http.StatusOK, listing)
}

func (lh *ListingHandler) PropertyTypes(ctx *gin.Context) {
	types, err := lh.listingService.PropertyTypes(ctx.Request.Context())
	if err != nil {
		lh.internalError(ctx, "property types", err)
		return
	}
	ctx.JSON(http.StatusOK, types)
}

func (lh *ListingHandler) BedroomCounts(ctx *gin.Context) {
	counts, err := lh.listingService.BedroomCounts(ctx.Request.Context())
	if err != nil {
		lh.internalError(ctx, "bedroom counts", err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

func (lh *ListingHandler) internalError(ctx *gin.Context, operation string, err error) {
	lh.logger.WithFields(logrus.Fields{"path": "handlers/listing"}).Error(operation+": ", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
}
