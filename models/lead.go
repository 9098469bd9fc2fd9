// File: models/lead.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServiceType is the kind of cleaning a customer asks for.
type ServiceType string

const (
	ServiceStandard         ServiceType = "Standard Cleaning"
	ServiceDeep             ServiceType = "Deep Cleaning"
	ServiceMoveInOut        ServiceType = "Move In/Out"
	ServiceOffice           ServiceType = "Office Cleaning"
	ServicePostConstruction ServiceType = "Post-Construction"
	ServiceCarpet           ServiceType = "Carpet Cleaning"
)

// ServiceTypes lists every accepted service type in display order.
var ServiceTypes = []ServiceType{
	ServiceStandard,
	ServiceDeep,
	ServiceMoveInOut,
	ServiceOffice,
	ServicePostConstruction,
	ServiceCarpet,
}

// Valid reports whether s is one of ServiceTypes.
func (s ServiceType) Valid() bool {
	for _, t := range ServiceTypes {
		if s == t {
			return true
		}
	}
	return false
}

// Lead is a customer's cleaning-service inquiry as submitted through the form.
// Optional fields are pointers so "absent" survives to storage as null.
type Lead struct {
	Name          string      `bson:"name" json:"name" validate:"min=2"`
	Email         string      `bson:"email" json:"email" validate:"email"`
	Phone         string      `bson:"phone" json:"phone"`
	Address       string      `bson:"address" json:"address"`
	City          *string     `bson:"city" json:"city"`
	ServiceType   ServiceType `bson:"service_type" json:"service_type" validate:"service_type"`
	Bedrooms      *int        `bson:"bedrooms" json:"bedrooms" validate:"omitempty,min=0,max=10"`
	Bathrooms     *int        `bson:"bathrooms" json:"bathrooms" validate:"omitempty,min=0,max=10"`
	PreferredDate *string     `bson:"preferred_date" json:"preferred_date"` // YYYY-MM-DD, not enforced
	Message       *string     `bson:"message" json:"message"`
}

// LeadDocument is a Lead as it sits in the store.
type LeadDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Lead      `bson:",inline"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// LeadView is the wire shape of a stored lead.
type LeadView struct {
	ID string `json:"id"`
	Lead
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// View renders the document for transport; timestamps become RFC 3339 text.
func (d LeadDocument) View() LeadView {
	return LeadView{
		ID:        d.ID.Hex(),
		Lead:      d.Lead,
		CreatedAt: formatTimestamp(d.CreatedAt),
		UpdatedAt: formatTimestamp(d.UpdatedAt),
	}
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
