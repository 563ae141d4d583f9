package field

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDField validates BSON object ids. The canonical representation is
// primitive.ObjectID.
//
// Native ObjectID values are accepted as-is. A 24-character hex string that
// passes the id validity check is converted. When no default is declared, a
// freshly generated id is produced on each default resolution.
type ObjectIDField struct {
	Core
}

// Kind returns the descriptor's display name.
func (f *ObjectIDField) Kind() string { return "ObjectIDField" }

// ResolveDefault resolves the declared default, falling back to a freshly
// generated ObjectID.
func (f *ObjectIDField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return primitive.NewObjectID(), nil
	}
	return f.Core.ResolveDefault()
}

// Validate coerces the value to primitive.ObjectID.
func (f *ObjectIDField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	var id primitive.ObjectID
	switch v := value.(type) {
	case primitive.ObjectID:
		id = v
	case string:
		if len(v) != 24 || !primitive.IsValidObjectID(v) {
			return nil, f.fail(value, "value is not a valid object id")
		}
		parsed, err := primitive.ObjectIDFromHex(v)
		if err != nil {
			return nil, f.fail(value, fmt.Sprintf("value is not a valid object id: %v", err))
		}
		id = parsed
	default:
		return nil, f.typeFail(value, "primitive.ObjectID")
	}
	if err := f.checkChoices(id); err != nil {
		return nil, err
	}
	return id, nil
}

// UUIDField validates RFC 4122 UUIDs. The canonical representation is
// uuid.UUID.
//
// Native uuid.UUID values are accepted as-is; strings are parsed. When no
// default is declared, a freshly generated UUID is produced on each default
// resolution.
type UUIDField struct {
	Core
}

// Kind returns the descriptor's display name.
func (f *UUIDField) Kind() string { return "UUIDField" }

// ResolveDefault resolves the declared default, falling back to a freshly
// generated UUID.
func (f *UUIDField) ResolveDefault() (any, error) {
	if f.Default == nil {
		return uuid.New(), nil
	}
	return f.Core.ResolveDefault()
}

// Validate coerces the value to uuid.UUID.
func (f *UUIDField) Validate(value any) (any, error) {
	if value == nil {
		return nil, f.checkNil()
	}
	var id uuid.UUID
	switch v := value.(type) {
	case uuid.UUID:
		id = v
	case string:
		parsed, err := uuid.Parse(v)
		if err != nil {
			return nil, f.fail(value, fmt.Sprintf("value is not a valid UUID: %v", err))
		}
		id = parsed
	default:
		return nil, f.typeFail(value, "uuid.UUID")
	}
	if err := f.checkChoices(id); err != nil {
		return nil, err
	}
	return id, nil
}
