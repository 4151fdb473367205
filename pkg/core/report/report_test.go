package report_test

import (
	"bytes"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwlog "github.com/msto63/ippcode/foundation/core/log"
	"github.com/msto63/ippcode/pkg/core/report"
)

var _ = Describe("Reporter", func() {
	var (
		out      *bytes.Buffer
		logs     *bytes.Buffer
		statuses []int
		reporter *report.Reporter
	)

	newReporter := func(verbose bool) *report.Reporter {
		return report.New(report.Options{
			Output: out,
			Logger: mdwlog.NewWithConfig(mdwlog.Config{
				Level:  mdwlog.LevelDebug,
				Format: mdwlog.FormatText,
				Output: logs,
			}),
			Verbose: verbose,
			Exit: func(status int) {
				statuses = append(statuses, status)
			},
		})
	}

	BeforeEach(func() {
		out = &bytes.Buffer{}
		logs = &bytes.Buffer{}
		statuses = nil
		reporter = newReporter(false)
	})

	DescribeTable("maps each error kind to its status and message",
		func(code mdwerror.Code, status int, message string) {
			err := mdwerror.NewWithCode(code, "boom")

			Expect(reporter.Report(err)).To(Equal(status))
			Expect(out.String()).To(Equal("Error: " + message + "\n"))
		},
		Entry("parameter", mdwerror.CodeParameter, 10,
			"missing script parameter or invalid combination of parameters used"),
		Entry("input access", mdwerror.CodeInputAccess, 11, "failed to open input file"),
		Entry("output access", mdwerror.CodeOutputAccess, 12, "failed to open output file"),
		Entry("header", mdwerror.CodeHeader, 21, "missing or wrong IPPcode24 header in source code"),
		Entry("unknown opcode", mdwerror.CodeUnknownOpcode, 22, "unknown opcode in source code"),
		Entry("syntax", mdwerror.CodeSyntax, 23, "other lexical or syntactical error detected"),
		Entry("internal", mdwerror.CodeInternal, 99, "internal error"),
	)

	It("treats uncoded errors as internal", func() {
		Expect(reporter.Report(errors.New("plain"))).To(Equal(mdwerror.ExitInternal))
		Expect(out.String()).To(ContainSubstring("internal error"))
	})

	It("reports nothing for a nil error", func() {
		Expect(reporter.Report(nil)).To(Equal(mdwerror.ExitOK))
		Expect(out.Len()).To(BeZero())
	})

	It("keeps the log quiet unless verbose", func() {
		reporter.Report(mdwerror.NewWithCode(mdwerror.CodeSyntax, "bad operand"))

		Expect(out.String()).NotTo(ContainSubstring("bad operand"))
		Expect(logs.Len()).To(BeZero())
	})

	Context("when verbose", func() {
		BeforeEach(func() {
			reporter = newReporter(true)
		})

		It("adds the error chain and a structured log entry", func() {
			err := mdwerror.NewWithCode(mdwerror.CodeSyntax, "bad operand").
				WithDetail("line", 3)

			reporter.Report(err)

			Expect(out.String()).To(ContainSubstring("  bad operand"))
			Expect(logs.String()).To(ContainSubstring("error_code=SYNTAX"))
			Expect(logs.String()).To(ContainSubstring("error_line=3"))
		})
	})

	Describe("Fail", func() {
		It("terminates with the status of the error", func() {
			reporter.Fail(mdwerror.NewWithCode(mdwerror.CodeHeader, "no header"))

			Expect(statuses).To(Equal([]int{mdwerror.ExitHeader}))
		})
	})

	Describe("Exit", func() {
		It("terminates with status zero on success", func() {
			reporter.Exit(nil)

			Expect(statuses).To(Equal([]int{mdwerror.ExitOK}))
			Expect(out.Len()).To(BeZero())
		})

		It("reports before terminating on failure", func() {
			reporter.Exit(mdwerror.NewWithCode(mdwerror.CodeOutputAccess, "denied"))

			Expect(statuses).To(Equal([]int{mdwerror.ExitOutputAccess}))
			Expect(out.String()).To(ContainSubstring("failed to open output file"))
		})
	})
})
