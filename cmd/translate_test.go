package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/kubev2v/whereql/internal/config"
	"github.com/kubev2v/whereql/internal/models"
	"github.com/kubev2v/whereql/pkg/docquery"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
)

// execute runs the root command with args and returns what it printed.
func execute(stdin string, args ...string) (string, error) {
	cfg := config.NewConfigurationWithOptionsAndDefaults()
	root := NewRootCommand(cfg)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

var _ = Describe("Translate Command", func() {
	It("should print the queries as text", func() {
		out, err := execute("", "translate", "age BETWEEN 18 AND 30 OR name = 'Jo'")
		Expect(err).ToNot(HaveOccurred())

		Expect(out).To(ContainSubstring("WHERE age BETWEEN 18 AND 30 OR name = 'Jo'"))
		Expect(out).To(ContainSubstring("query 1: age >= 18 AND age <= 30"))
		Expect(out).To(ContainSubstring(`query 2: name == "Jo"`))
	})

	It("should print the queries as JSON", func() {
		out, err := execute("", "translate", "--output", "json", "name LIKE 'ab%'")
		Expect(err).ToNot(HaveOccurred())

		var result translation
		Expect(json.Unmarshal([]byte(out), &result)).To(Succeed())
		Expect(result.Where).To(Equal("name LIKE 'ab%'"))
		Expect(result.Queries).To(Equal([][]docquery.Filter{{
			{Field: "name", Operator: docquery.OpGreaterOrEqual, Value: "ab"},
			{Field: "name", Operator: docquery.OpLess, Value: "ac"},
		}}))
	})

	It("should print the queries as YAML", func() {
		out, err := execute("", "translate", "-o", "yaml", "tags CONTAINS ANY ('go', 'sql')")
		Expect(err).ToNot(HaveOccurred())

		var result map[string]any
		Expect(yaml.Unmarshal([]byte(out), &result)).To(Succeed())
		Expect(result["where"]).To(Equal("tags CONTAINS ANY ('go', 'sql')"))

		queries, ok := result["queries"].([]any)
		Expect(ok).To(BeTrue())
		Expect(queries).To(HaveLen(1))
		Expect(out).To(ContainSubstring("op: array-contains-any"))
	})

	It("should reject unknown output formats", func() {
		_, err := execute("", "translate", "--output", "xml", "a = 1")
		Expect(err).To(MatchError(ContainSubstring("invalid output format")))
	})

	It("should return translation errors", func() {
		_, err := execute("", "translate", "name LIKE '%b'")
		Expect(srvErrors.IsUnsupportedError(err)).To(BeTrue())
	})
})

var _ = Describe("Load and Query Commands", func() {
	var storePath string

	BeforeEach(func() {
		storePath = filepath.Join(GinkgoT().TempDir(), "whereql.duckdb")
	})

	It("should query loaded documents", func() {
		out, err := execute(`[{"id": "1", "name": "Jo", "age": 25}, {"id": "2", "name": "Ann", "age": 40}]`,
			"load", "--store-path", storePath, "--collection", "people", "-")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("loaded 2 documents into people"))

		out, err = execute("", "query", "--store-path", storePath, "--collection", "people", "--output", "json", "age > 30")
		Expect(err).ToNot(HaveOccurred())

		var result models.QueryResult
		Expect(json.Unmarshal([]byte(out), &result)).To(Succeed())
		Expect(result.Documents).To(HaveLen(1))
		Expect(result.Documents[0].ID).To(Equal("2"))
	})

	It("should fail on unknown collections", func() {
		_, err := execute("", "query", "--store-path", storePath, "--collection", "people", "age > 30")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})
})
