package mongoclient

import (
	"errors"
	"reflect"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsoncodec"
	"golang.org/x/xerrors"
)

var (
	ErrNotPatchable = errors.New("patch must be a struct")
)

// MakeBsonM turns a patch struct into a $set document. Nil pointers and
// omitempty zero values are left out, a non nil pointer to a zero value is kept.
func MakeBsonM(patchable interface{}) (bson.M, error) {
	val := reflect.Indirect(reflect.ValueOf(patchable))
	if val.Kind() != reflect.Struct {
		return nil, xerrors.Errorf("%w: got %s", ErrNotPatchable, val.Kind())
	}

	bsonM := bson.M{}
	for i := 0; i < val.NumField(); i++ {
		field := val.Field(i)
		if !field.CanInterface() {
			continue
		}

		tag, err := bsoncodec.DefaultStructTagParser(val.Type().Field(i))
		if err != nil {
			return nil, err
		}

		switch {
		case tag.Skip:
		case field.Kind() == reflect.Ptr:
			if !field.IsNil() {
				bsonM[tag.Name] = field.Elem().Interface()
			}
		case !field.IsZero():
			bsonM[tag.Name] = field.Interface()
		}
	}

	return bsonM, nil
}
