package store_test

import (
	"context"
	"database/sql"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/whereql/internal/models"
	"github.com/kubev2v/whereql/internal/store"
	"github.com/kubev2v/whereql/pkg/docquery"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
	"github.com/kubev2v/whereql/pkg/where"
)

const people = `[
	{"id": "1", "name": "Jo", "age": 25, "active": true, "tags": ["go", "sql"], "address": {"city": "Paris"}},
	{"id": "2", "name": "John", "age": 40, "active": false, "tags": ["rust"], "address": {"city": "Berlin"}},
	{"id": "3", "name": "Joan", "age": 31.5, "tags": [1, 2], "deleted": null},
	{"id": "4", "name": "Bob", "age": "old", "active": true},
	{"id": "5", "name": "Jp"}
]`

var _ = Describe("DocumentStore", func() {
	var (
		ctx  context.Context
		db   *sql.DB
		s    *store.Store
		docs *store.DocumentStore
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(store.MemoryPath)
		Expect(err).ToNot(HaveOccurred())

		s = store.NewStore(db)
		Expect(s.Migrate(ctx)).To(Succeed())
		docs = s.Documents()

		parsed, err := models.ParseDocuments([]byte(people))
		Expect(err).ToNot(HaveOccurred())
		Expect(docs.Save(ctx, "people", parsed...)).To(Succeed())
	})

	AfterEach(func() {
		Expect(s.Close()).To(Succeed())
	})

	ids := func(found []models.Document) []string {
		out := make([]string, 0, len(found))
		for _, d := range found {
			out = append(out, d.ID)
		}
		return out
	}

	// find translates input against the people collection and runs every query.
	find := func(input string) ([]string, error) {
		node, err := where.Parse([]byte(input))
		Expect(err).ToNot(HaveOccurred())

		qs, err := docquery.TranslateWhere(docquery.NewQuerySet(docs.Query("people")), node)
		if err != nil {
			return nil, err
		}

		var out []string
		for _, q := range qs {
			found, err := docs.Find(ctx, q)
			if err != nil {
				return nil, err
			}
			out = append(out, ids(found)...)
		}
		return out, nil
	}

	Context("Save and Get", func() {
		It("should read back a saved document", func() {
			doc, err := docs.Get(ctx, "people", "1")
			Expect(err).ToNot(HaveOccurred())
			Expect(doc.ID).To(Equal("1"))
			Expect(string(doc.Data)).To(ContainSubstring(`"name"`))
		})

		It("should return not found for a missing document", func() {
			_, err := docs.Get(ctx, "people", "42")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())

			_, err = docs.Get(ctx, "animals", "1")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should replace a document with the same id", func() {
			replaced, err := models.ParseDocuments([]byte(`[{"id": "1", "name": "Joe"}, {"id": "1", "name": "Joey"}]`))
			Expect(err).ToNot(HaveOccurred())
			Expect(docs.Save(ctx, "people", replaced...)).To(Succeed())

			found, err := find("name = 'Joey'")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(Equal([]string{"1"}))

			found, err = find("name = 'Jo'")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(BeEmpty())
		})

		It("should keep collections apart", func() {
			other, err := models.ParseDocuments([]byte(`{"id": "1", "name": "Jo"}`))
			Expect(err).ToNot(HaveOccurred())
			Expect(docs.Save(ctx, "animals", other...)).To(Succeed())

			names, err := docs.Collections(ctx)
			Expect(err).ToNot(HaveOccurred())
			Expect(names).To(Equal([]string{"animals", "people"}))

			found, err := find("name = 'Jo'")
			Expect(err).ToNot(HaveOccurred())
			Expect(found).To(Equal([]string{"1"}))
		})
	})

	Context("Delete and Exists", func() {
		It("should delete documents", func() {
			Expect(docs.Delete(ctx, "people", "1")).To(Succeed())
			Expect(docs.Delete(ctx, "people", "1")).To(Succeed())

			_, err := docs.Get(ctx, "people", "1")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should report whether a collection exists", func() {
			exists, err := docs.Exists(ctx, "people")
			Expect(err).ToNot(HaveOccurred())
			Expect(exists).To(BeTrue())

			exists, err = docs.Exists(ctx, "animals")
			Expect(err).ToNot(HaveOccurred())
			Expect(exists).To(BeFalse())
		})
	})

	DescribeTable("translated queries",
		func(input string, expected []string) {
			found, err := find(input)
			Expect(err).ToNot(HaveOccurred())
			if len(expected) == 0 {
				Expect(found).To(BeEmpty())
				return
			}
			Expect(found).To(Equal(expected))
		},
		Entry("string equality", "name = 'Jo'", []string{"1"}),
		Entry("numeric range skips strings", "age > 30", []string{"2", "3"}),
		Entry("numeric between", "age BETWEEN 25 AND 31.5", []string{"1", "3"}),
		Entry("like prefix", "name LIKE 'Jo%'", []string{"1", "2", "3"}),
		Entry("like exact", "name LIKE 'Bob'", []string{"4"}),
		Entry("not equal on numbers is a union", "age != 40", []string{"1", "3"}),
		Entry("bare column", "active", []string{"1", "4"}),
		Entry("boolean not equal", "active != true", []string{"2"}),
		Entry("nested field", "address.city = 'Berlin'", []string{"2"}),
		Entry("in list", "name IN ('Bob', 'Jp')", []string{"4", "5"}),
		Entry("array contains", "tags CONTAINS 'go'", []string{"1"}),
		Entry("array contains number", "tags CONTAINS 2", []string{"3"}),
		Entry("array contains any", "tags CONTAINS ANY ('rust', 1)", []string{"2", "3"}),
		Entry("null equality", "deleted IS NULL", []string{"3"}),
		Entry("string filter never matches numbers", "age = '25'", nil),
		Entry("or keeps duplicates", "age < 30 OR name = 'Jo'", []string{"1", "1"}),
		Entry("and narrows", "name LIKE 'Jo%' AND age >= 31.5", []string{"2", "3"}),
	)

	It("should match prefixes without a valid UTF-8 successor", func() {
		glyphs, err := models.ParseDocuments([]byte("[" +
			`{"id": "a", "name": "` + strings.Repeat("\U0010FFFF", 3) + `"},` +
			`{"id": "b", "name": "` + "\U0010FFFF" + `"},` +
			`{"id": "c", "name": "z"}]`))
		Expect(err).ToNot(HaveOccurred())
		Expect(docs.Save(ctx, "glyphs", glyphs...)).To(Succeed())

		node, err := where.Parse([]byte("name LIKE '\U0010FFFF%'"))
		Expect(err).ToNot(HaveOccurred())
		qs, err := docquery.TranslateWhere(docquery.NewQuerySet(docs.Query("glyphs")), node)
		Expect(err).ToNot(HaveOccurred())
		Expect(qs).To(HaveLen(1))

		found, err := docs.Find(ctx, qs[0])
		Expect(err).ToNot(HaveOccurred())
		Expect(ids(found)).To(ConsistOf("a", "b"))
	})

	It("should fail queries with invalid field names", func() {
		q := docs.Query("people").WithFilter("name; DROP TABLE documents", docquery.OpEqual, "x")
		_, err := docs.Find(ctx, q)
		Expect(srvErrors.IsInvalidFieldError(err)).To(BeTrue())

		exists, err := docs.Exists(ctx, "people")
		Expect(err).ToNot(HaveOccurred())
		Expect(exists).To(BeTrue())
	})

	It("should reject queries it did not build", func() {
		_, err := docs.Find(ctx, docquery.NewFilterQuery())
		Expect(err).To(HaveOccurred())
	})

	It("should limit results", func() {
		found, err := docs.Find(ctx, docs.Query("people"), store.WithLimit(2))
		Expect(err).ToNot(HaveOccurred())
		Expect(ids(found)).To(Equal([]string{"1", "2"}))
	})
})
