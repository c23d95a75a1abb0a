package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/IrfanulM/MyBNB/handlers"
)

type ListingRouteHandler struct {
	listingHandler handlers.ListingHandler
}

func NewListingRouteHandler(listingHandler handlers.ListingHandler) ListingRouteHandler {
	return ListingRouteHandler{listingHandler}
}

func (rc *ListingRouteHandler) ListingRoute(rg *gin.RouterGroup) {
	rg.GET("/initial", rc.listingHandler.InitialListings)
	rg.POST("/search", rc.listingHandler.Search)
	rg.GET("/listings/:id", rc.listingHandler.GetListingByID)
	rg.GET("/property-types", rc.listingHandler.PropertyTypes)
	rg.GET("/bedrooms", rc.listingHandler.BedroomCounts)
}
