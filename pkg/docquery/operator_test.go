package docquery_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/whereql/pkg/docquery"
	srvErrors "github.com/kubev2v/whereql/pkg/errors"
	"github.com/kubev2v/whereql/pkg/where"
)

var _ = Describe("MapOperator", func() {
	DescribeTable("supported operators",
		func(op where.Operator, expected docquery.FilterOperator) {
			got, err := docquery.MapOperator(op)
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(expected))
		},
		Entry("=", where.Equal, docquery.OpEqual),
		Entry("IS", where.Is, docquery.OpEqual),
		Entry("<", where.Less, docquery.OpLess),
		Entry("<=", where.LessOrEqual, docquery.OpLessOrEqual),
		Entry(">", where.Greater, docquery.OpGreater),
		Entry(">=", where.GreaterOrEqual, docquery.OpGreaterOrEqual),
		Entry("CONTAINS", where.Contains, docquery.OpArrayContains),
		Entry("CONTAINS-ANY", where.ContainsAny, docquery.OpArrayContainsAny),
	)

	DescribeTable("negations",
		func(op where.Operator) {
			_, err := docquery.MapOperator(op)
			Expect(srvErrors.IsUnsupportedError(err)).To(BeTrue())
		},
		Entry("NOT", where.Not),
		Entry("NOT CONTAINS", where.NotContains),
	)

	DescribeTable("unknown operators",
		func(op where.Operator) {
			_, err := docquery.MapOperator(op)
			Expect(srvErrors.IsUnknownOperatorError(err)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring(op.String()))
		},
		Entry("AND", where.And),
		Entry("OR", where.Or),
		Entry("IN", where.In),
		Entry("LIKE", where.Like),
		Entry("BETWEEN", where.Between),
		Entry("!=", where.NotEqual),
		Entry("<>", where.LessGreater),
		Entry("out of range", where.Operator(42)),
	)

	It("should classify range operators", func() {
		Expect(docquery.OpLess.IsRange()).To(BeTrue())
		Expect(docquery.OpGreaterOrEqual.IsRange()).To(BeTrue())
		Expect(docquery.OpEqual.IsRange()).To(BeFalse())
		Expect(docquery.OpArrayContains.IsRange()).To(BeFalse())
	})
})
