package parser

import (
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	mdwerror "github.com/msto63/ippcode/foundation/core/error"
	mdwlog "github.com/msto63/ippcode/foundation/core/log"
	mdwast "github.com/msto63/ippcode/foundation/ippcode/ast"
	mdwregistry "github.com/msto63/ippcode/foundation/ippcode/registry"
)

func detailOf(err error, key string) interface{} {
	mdwErr, ok := err.(*mdwerror.Error)
	Expect(ok).To(BeTrue(), "error %v is not an *mdwerror.Error", err)
	v, _ := mdwErr.Detail(key)
	return v
}

var _ = Describe("Parser", func() {
	var parser *Parser

	BeforeEach(func() {
		parser = New(Options{Logger: mdwlog.NewNop()})
	})

	It("should build a tree for a defined and moved variable", func() {
		prog, err := parser.Parse(".IPPCODE24\nDEFVAR GF@x\nMOVE GF@x int@5\n")

		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Instructions).To(HaveLen(2))

		Expect(prog.Instructions[0].Order).To(Equal(1))
		Expect(prog.Instructions[0].Opcode).To(Equal("DEFVAR"))
		Expect(prog.Instructions[0].Args).To(HaveLen(1))
		Expect(prog.Instructions[0].Args[0].Type).To(Equal(mdwast.ArgTypeVar))
		Expect(prog.Instructions[0].Args[0].Value).To(Equal("GF@x"))

		Expect(prog.Instructions[1].Order).To(Equal(2))
		Expect(prog.Instructions[1].Opcode).To(Equal("MOVE"))
		Expect(prog.Instructions[1].Args).To(HaveLen(2))
		Expect(prog.Instructions[1].Args[0].Type).To(Equal(mdwast.ArgTypeVar))
		Expect(prog.Instructions[1].Args[1].Type).To(Equal(mdwast.ArgTypeInt))
		Expect(prog.Instructions[1].Args[1].Value).To(Equal("5"))
	})

	It("should reject a source without header", func() {
		prog, err := parser.Parse("MOVE GF@x int@5\n")

		Expect(prog).To(BeNil())
		Expect(mdwerror.GetCode(err)).To(Equal(mdwerror.CodeHeader))
	})

	It("should reject an unknown opcode", func() {
		_, err := parser.Parse(".IPPCODE24\nFOO\n")

		Expect(mdwerror.GetCode(err)).To(Equal(mdwerror.CodeUnknownOpcode))
		Expect(detailOf(err, "opcode")).To(Equal("FOO"))
	})

	It("should reject a wrong operand count", func() {
		_, err := parser.Parse(".IPPCODE24\nADD GF@x int@1\n")

		Expect(mdwerror.GetCode(err)).To(Equal(mdwerror.CodeSyntax))
	})

	It("should classify nil constants", func() {
		prog, err := parser.Parse(".IPPCODE24\nPUSHS nil@nil\n")

		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Instructions).To(HaveLen(1))
		Expect(prog.Instructions[0].Args[0].Type).To(Equal(mdwast.ArgTypeNil))
		Expect(prog.Instructions[0].Args[0].Value).To(Equal("nil"))
	})

	It("should number instructions without gaps", func() {
		source := ".IPPcode24\n" +
			"# counter\n" +
			"DEFVAR GF@i\n" +
			"\n" +
			"MOVE GF@i int@0x0A  # start\n" +
			"LABEL loop\n" +
			"SUB GF@i GF@i int@1\n" +
			"JUMPIFNEQ loop GF@i int@0\n" +
			"WRITE string@done\\010\n"

		prog, err := parser.Parse(source)

		Expect(err).NotTo(HaveOccurred())
		Expect(prog.Instructions).To(HaveLen(6))
		for i, inst := range prog.Instructions {
			Expect(inst.Order).To(Equal(i + 1))
		}
		Expect(prog.Validate()).To(Succeed())
	})

	Context("with a stub registry", func() {
		var (
			mockCtrl *gomock.Controller
			registry *MockInterface
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			registry = NewMockInterface(mockCtrl)
			registry.EXPECT().Header().
				Return(mdwregistry.Signature{Name: mdwregistry.HeaderMarker, Header: true}).
				AnyTimes()

			parser = New(Options{Logger: mdwlog.NewNop(), Registry: registry})
		})

		AfterEach(func() {
			mockCtrl.Finish()
		})

		It("should check the header before looking up any instruction", func() {
			registry.EXPECT().IsHeader("MOVE GF@x int@5").Return(false)

			_, err := parser.Parse("MOVE GF@x int@5\n")

			Expect(mdwerror.GetCode(err)).To(Equal(mdwerror.CodeHeader))
		})

		It("should look up the upper-cased opcode", func() {
			registry.EXPECT().IsHeader(gomock.Any()).Return(true)
			registry.EXPECT().Lookup("NOP").Return(mdwregistry.Signature{Name: "NOP", Args: []mdwregistry.Kind{}}, true)

			prog, err := parser.Parse(".IPPcode24\nnop\n")

			Expect(err).NotTo(HaveOccurred())
			Expect(prog.Instructions[0].Opcode).To(Equal("NOP"))
		})

		It("should check the operand count before classifying operands", func() {
			registry.EXPECT().IsHeader(gomock.Any()).Return(true)
			registry.EXPECT().Lookup("PAIR").Return(mdwregistry.Signature{
				Name: "PAIR",
				Args: []mdwregistry.Kind{mdwregistry.KindVar, mdwregistry.KindVar},
			}, true)

			_, err := parser.Parse(".IPPcode24\nPAIR not-a-variable\n")

			Expect(mdwerror.GetCode(err)).To(Equal(mdwerror.CodeSyntax))
			Expect(detailOf(err, "expected")).To(Equal(2))
			Expect(detailOf(err, "actual")).To(Equal(1))
			Expect(detailOf(err, "token")).To(BeNil())
		})

		It("should stop at the first failing statement", func() {
			registry.EXPECT().IsHeader(gomock.Any()).Return(true)
			registry.EXPECT().Lookup("FIRST").Return(mdwregistry.Signature{}, false)

			_, err := parser.Parse(".IPPcode24\nFIRST\nSECOND\n")

			Expect(mdwerror.GetCode(err)).To(Equal(mdwerror.CodeUnknownOpcode))
			Expect(detailOf(err, "line")).To(Equal(2))
		})
	})
})
