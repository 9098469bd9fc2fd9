package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// System endpoints
	RootHandler         gin.HandlerFunc
	HelloHandler        gin.HandlerFunc
	TestDatabaseHandler gin.HandlerFunc

	// Lead endpoints
	CreateLeadHandler gin.HandlerFunc
	ListLeadsHandler  gin.HandlerFunc
}

// NewHandlerBundle wires the handler methods into a bundle.
func NewHandlerBundle(sys *SystemHandler, leads *LeadHandler) *HandlerBundle {
	return &HandlerBundle{
		RootHandler:         sys.RootHandler,
		HelloHandler:        sys.HelloHandler,
		TestDatabaseHandler: sys.TestDatabaseHandler,
		CreateLeadHandler:   leads.CreateLeadHandler,
		ListLeadsHandler:    leads.ListLeadsHandler,
	}
}
