package utils

import (
	"encoding/json"
	"fmt"

	"github.com/kataras/iris/v12"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreatedJSON writes a 201 with the payload fields plus the store-assigned id.
func CreatedJSON(ctx iris.Context, id string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		CreateInternalServerError(ctx)
		return
	}
	body := map[string]interface{}{}
	if err := json.Unmarshal(raw, &body); err != nil {
		CreateInternalServerError(ctx)
		return
	}
	body["id"] = id

	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(body)
}

// PublicDocuments rewrites the store-native _id of each document into a
// public id string. Always returns a non-nil slice so lists encode as [].
func PublicDocuments(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, d := range docs {
		doc := bson.M{}
		for k, v := range d {
			doc[k] = v
		}
		if oid, ok := doc["_id"].(primitive.ObjectID); ok {
			doc["id"] = oid.Hex()
		} else if raw, ok := doc["_id"]; ok {
			doc["id"] = fmt.Sprintf("%v", raw)
		}
		delete(doc, "_id")
		out = append(out, doc)
	}
	return out
}
