package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ResourceType tags a resource with its kind.
type ResourceType string

const (
	// TypeDocument marks text content resources.
	TypeDocument ResourceType = "document"
	// TypeUser marks user profile resources.
	TypeUser ResourceType = "user"
	// TypeProject marks project metadata resources.
	TypeProject ResourceType = "project"
	// TypeSettings marks configuration resources.
	TypeSettings ResourceType = "settings"
	// TypeMedia marks image, video and other binary resources.
	TypeMedia ResourceType = "media"
	// TypeAny is the wildcard used by processors that handle every type.
	TypeAny ResourceType = "any"
)

// resourceTypes is the set of valid type tags.
var resourceTypes = map[ResourceType]bool{
	TypeDocument: true,
	TypeUser:     true,
	TypeProject:  true,
	TypeSettings: true,
	TypeMedia:    true,
	TypeAny:      true,
}

// ParseResourceType converts a string into a ResourceType. The second return
// value is false for unknown tags.
func ParseResourceType(s string) (ResourceType, bool) {
	rt := ResourceType(s)
	return rt, resourceTypes[rt]
}

// String returns the wire representation of the type.
func (rt ResourceType) String() string { return string(rt) }

// ResourceData is the payload of a resource: a name, a type tag and two
// free-form key-value maps.
type ResourceData struct {
	Name        string            `json:"name"`
	Type        ResourceType      `json:"resource_type"`
	Description string            `json:"description,omitempty"`
	Data        map[string]string `json:"data"`
	Metadata    map[string]string `json:"metadata"`
}

// NewResourceData creates a payload with empty data and metadata maps.
func NewResourceData(name string, rt ResourceType) ResourceData {
	return ResourceData{
		Name:     name,
		Type:     rt,
		Data:     make(map[string]string),
		Metadata: make(map[string]string),
	}
}

// WithData sets a data field and returns the payload for chaining.
func (d ResourceData) WithData(key, value string) ResourceData {
	if d.Data == nil {
		d.Data = make(map[string]string)
	}
	d.Data[key] = value
	return d
}

// WithMetadata sets a metadata field and returns the payload for chaining.
func (d ResourceData) WithMetadata(key, value string) ResourceData {
	if d.Metadata == nil {
		d.Metadata = make(map[string]string)
	}
	d.Metadata[key] = value
	return d
}

// WithDescription sets the description and returns the payload for chaining.
func (d ResourceData) WithDescription(description string) ResourceData {
	d.Description = description
	return d
}

// Validate checks the payload against the rules the upstream API enforces:
// a non-empty name of at most 100 characters, a known type tag, and the
// per-type required data fields.
func (d ResourceData) Validate() error {
	err := validation.ValidateStruct(&d,
		validation.Field(&d.Name,
			validation.Required.Error("resource name cannot be empty"),
			validation.Length(1, 100).Error("resource name too long (max 100 characters)"),
		),
		validation.Field(&d.Type, validation.By(validResourceType)),
	)
	if err != nil {
		return err
	}

	switch d.Type {
	case TypeDocument:
		if _, ok := d.Data["content"]; !ok {
			return validation.NewError("resource_document_content", "document must have content")
		}
	case TypeUser:
		if _, ok := d.Data["email"]; !ok {
			return validation.NewError("resource_user_email", "user must have an email")
		}
	}
	return nil
}

func validResourceType(value any) error {
	rt, _ := value.(ResourceType)
	if !resourceTypes[rt] {
		return validation.NewError("resource_type_unknown", "unknown resource type")
	}
	return nil
}

// Resource is a payload with identity and lifecycle timestamps.
type Resource struct {
	ID        string       `json:"id"`
	Data      ResourceData `json:"data"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	OwnerID   string       `json:"owner_id,omitempty"`
}

// NewResource creates a resource with both timestamps set to now.
func NewResource(id string, data ResourceData) Resource {
	now := time.Now().UTC()
	return Resource{
		ID:        id,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithOwner sets the owning user and returns the resource for chaining.
func (r Resource) WithOwner(ownerID string) Resource {
	r.OwnerID = ownerID
	return r
}

// Touch moves the updated timestamp to now.
func (r *Resource) Touch() {
	r.UpdatedAt = time.Now().UTC()
}

// IsOwnedBy reports whether the resource belongs to the given user.
// Unowned resources belong to nobody.
func (r Resource) IsOwnedBy(userID string) bool {
	return r.OwnerID != "" && r.OwnerID == userID
}
