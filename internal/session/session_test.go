package session_test

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/session"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
)

var _ = Describe("Session", func() {
	var (
		reg    *sorting.Registry
		logger *log.Logger
	)

	BeforeEach(func() {
		reg = sorting.NewRegistry()
		logger = log.New(io.Discard)
	})

	It("rejects unknown algorithms", func() {
		_, err := session.New(reg, "bogo", logger)
		Expect(err).To(MatchError(ContainSubstring("unknown algorithm: bogo")))
	})

	It("gets a uuid identity", func() {
		s, err := session.New(reg, "merge", logger)
		Expect(err).NotTo(HaveOccurred())
		_, err = uuid.Parse(s.ID)
		Expect(err).NotTo(HaveOccurred())
		Expect(s.Loaded()).To(BeFalse())
	})

	It("replaces log and player whole on load", func() {
		s, _ := session.New(reg, "quick", logger)
		Expect(s.Load([]int{3, 1, 2})).To(Succeed())
		first := s.Player
		first.Last()

		Expect(s.Load([]int{9, 8})).To(Succeed())
		Expect(s.Player).NotTo(BeIdenticalTo(first))
		Expect(s.Player.Cursor()).To(Equal(player.BeforeStart))
		Expect(s.Log.Input).To(Equal([]int{9, 8}))
		Expect(s.Log.Final()).To(Equal([]int{8, 9}))
	})

	It("copies the input it loads", func() {
		s, _ := session.New(reg, "insertion", logger)
		in := []int{2, 1}
		Expect(s.Load(in)).To(Succeed())
		in[0] = 100
		Expect(s.Input).To(Equal([]int{2, 1}))
	})

	It("passes player options through", func() {
		s, _ := session.New(reg, "selection", logger, player.WithoutPreStart())
		Expect(s.Load([]int{4, 2})).To(Succeed())
		step, ok := s.Player.Current()
		Expect(ok).To(BeTrue())
		Expect(step.Kind).To(Equal(trace.KindSelect))
	})

	It("switches algorithms and re-records", func() {
		s, _ := session.New(reg, "bubble", logger)
		Expect(s.Load([]int{5, 4, 3})).To(Succeed())
		Expect(s.Switch("merge")).To(Succeed())
		Expect(s.Log.Algorithm).To(Equal("merge"))
		Expect(s.Log.Tree.Len()).To(BeNumerically(">", 0))
		Expect(s.Switch("nope")).NotTo(Succeed())
		Expect(s.Algorithm).To(Equal("merge"))
	})

	Context("while a sequence runs", func() {
		It("refuses a second start and any reload", func() {
			s, _ := session.New(reg, "insertion", logger)
			Expect(s.Load([]int{1, 2})).To(Succeed())

			Expect(s.Guard.Begin()).To(Succeed())
			Expect(s.Guard.Begin()).To(MatchError(session.ErrBusy))
			Expect(s.Load([]int{3})).To(MatchError(session.ErrBusy))
			Expect(s.Switch("quick")).To(MatchError(session.ErrBusy))

			s.Guard.End()
			Expect(s.Guard.Busy()).To(BeFalse())
			Expect(s.Load([]int{3})).To(Succeed())
		})
	})
})
