package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/brightroof/solar-leads/internal/interface/http"
)

// ListingModule wires the public read-only retrieval endpoints.
type ListingModule struct {
	Handler *handlers.ListingHandler
}

func NewListingModule(h *handlers.ListingHandler) *ListingModule {
	return &ListingModule{Handler: h}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	rg.GET("/get-all-services", m.Handler.GetAllServices)
	rg.GET("/get-contact-data", m.Handler.GetContactData)
	rg.GET("/get-calculator-data", m.Handler.GetCalculatorData)
	rg.GET("/notifications", m.Handler.Notifications)
	rg.GET("/fetch-solar-data", m.Handler.FetchSolarData)
	rg.GET("/search-services", m.Handler.SearchServices)
}
