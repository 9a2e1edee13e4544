package models

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/valyala/fastjson"
)

// Document is a schemaless JSON object stored in a collection.
type Document struct {
	ID   string          `json:"id"`
	Data json.RawMessage `json:"data"`
}

// NewDocument builds a document from a JSON object. The "id" member is
// used as the document id when it is a string; otherwise a new id is generated.
func NewDocument(v *fastjson.Value) (Document, error) {
	if v.Type() != fastjson.TypeObject {
		return Document{}, fmt.Errorf("document must be a JSON object, got %s", v.Type())
	}

	id := string(v.GetStringBytes("id"))
	if id == "" {
		id = uuid.NewString()
	}

	return Document{ID: id, Data: v.MarshalTo(nil)}, nil
}

var documentParsers fastjson.ParserPool

// ParseDocuments decodes a single JSON object or an array of objects.
func ParseDocuments(body []byte) ([]Document, error) {
	p := documentParsers.Get()
	defer documentParsers.Put(p)

	v, err := p.ParseBytes(body)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if v.Type() != fastjson.TypeArray {
		doc, err := NewDocument(v)
		if err != nil {
			return nil, err
		}
		return []Document{doc}, nil
	}

	arr, _ := v.Array()
	docs := make([]Document, 0, len(arr))
	for i, item := range arr {
		doc, err := NewDocument(item)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// QueryResult holds the documents matched by one WHERE expression.
// Queries lists the filter sets that were executed, one per query of the
// translated query set; a document matched by several of them appears
// once per match.
type QueryResult struct {
	Collection string     `json:"collection"`
	Where      string     `json:"where"`
	Queries    []string   `json:"queries"`
	Documents  []Document `json:"documents"`
}
