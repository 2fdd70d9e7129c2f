package player_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoviz/internal/player"
	"github.com/san-kum/algoviz/internal/sorting"
	"github.com/san-kum/algoviz/internal/trace"
)

type recordingRenderer struct {
	rendered []trace.Step
	clears   int
}

func (r *recordingRenderer) Render(s trace.Step) { r.rendered = append(r.rendered, s) }
func (r *recordingRenderer) Clear()              { r.clears++ }

var _ = Describe("Player", func() {
	var (
		lg       *trace.Log
		renderer *recordingRenderer
		p        *player.Player
	)

	BeforeEach(func() {
		lg = sorting.NewInsertion().Record([]int{5, 2, 4, 1})
		renderer = &recordingRenderer{}
		p = player.New(lg, player.WithRenderer(renderer))
	})

	It("starts before the first step", func() {
		Expect(p.Cursor()).To(Equal(player.BeforeStart))
		_, ok := p.Current()
		Expect(ok).To(BeFalse())
		Expect(renderer.rendered).To(BeEmpty())
		Expect(renderer.clears).To(Equal(1))
		Expect(p.Progress()).To(Equal("0 / 18"))
	})

	It("visits every index once in increasing order from first to last", func() {
		p.First()
		visited := []int{p.Cursor()}
		for !p.AtEnd() {
			p.Next()
			visited = append(visited, p.Cursor())
		}
		Expect(visited).To(HaveLen(lg.Len()))
		for i, v := range visited {
			Expect(v).To(Equal(i))
		}
	})

	It("returns to an equal step after next then prev", func() {
		p.Seek(3)
		before, _ := p.Current()
		p.Next()
		back, ok := p.Prev()
		Expect(ok).To(BeTrue())
		Expect(back.Equal(before)).To(BeTrue())
	})

	It("replays backward exactly what forward playback showed", func() {
		forward := []trace.Step{}
		for p.CanNext() {
			s, _ := p.Next()
			forward = append(forward, s)
		}
		for i := len(forward) - 1; i >= 0; i-- {
			s, ok := p.Current()
			Expect(ok).To(BeTrue())
			Expect(s.Equal(forward[i])).To(BeTrue())
			p.Prev()
		}
		Expect(p.Cursor()).To(Equal(player.BeforeStart))
	})

	It("treats next at the end as a no-op", func() {
		p.Last()
		count := len(renderer.rendered)
		s, ok := p.Next()
		Expect(ok).To(BeTrue())
		Expect(s.Kind).To(Equal(trace.KindDone))
		Expect(p.Cursor()).To(Equal(lg.Len() - 1))
		Expect(renderer.rendered).To(HaveLen(count))
	})

	It("treats prev at the lower bound as a no-op", func() {
		_, ok := p.Prev()
		Expect(ok).To(BeFalse())
		Expect(p.Cursor()).To(Equal(player.BeforeStart))
	})

	It("clamps seeks", func() {
		p.Seek(1000)
		Expect(p.Cursor()).To(Equal(lg.Len() - 1))
		p.Seek(-50)
		Expect(p.Cursor()).To(Equal(player.BeforeStart))
	})

	It("re-renders on first and last even without movement", func() {
		p.Last()
		p.Last()
		Expect(renderer.rendered).To(HaveLen(2))
		Expect(renderer.rendered[0].Equal(renderer.rendered[1])).To(BeTrue())
	})

	It("never mutates the log", func() {
		before := lg.At(2)
		s, _ := p.Seek(2)
		s.Seq[0] = 1000
		Expect(lg.At(2).Equal(before)).To(BeTrue())
	})

	Context("without a pre-start position", func() {
		It("renders the first step immediately", func() {
			r := &recordingRenderer{}
			q := player.New(lg, player.WithRenderer(r), player.WithoutPreStart())
			Expect(q.Cursor()).To(Equal(0))
			Expect(r.rendered).To(HaveLen(1))
			_, ok := q.Prev()
			Expect(ok).To(BeTrue())
			Expect(q.Cursor()).To(Equal(0))
		})
	})

	Context("with a trivial input", func() {
		It("sits at the terminal state and ignores next and prev", func() {
			for _, in := range [][]int{{}, {7}} {
				one := sorting.NewQuick().Record(in)
				Expect(one.Len()).To(Equal(1))

				q := player.New(one, player.WithoutPreStart())
				Expect(q.AtEnd()).To(BeTrue())
				q.Next()
				Expect(q.Cursor()).To(Equal(0))
				q.Prev()
				Expect(q.Cursor()).To(Equal(0))
			}
		})

		It("renders the terminal step at once with default options", func() {
			for _, in := range [][]int{{}, {7}} {
				one := sorting.NewMerge().Record(in)
				r := &recordingRenderer{}
				q := player.New(one, player.WithRenderer(r))
				Expect(q.Cursor()).To(Equal(0))
				Expect(q.AtEnd()).To(BeTrue())
				Expect(r.rendered).To(HaveLen(1))
				Expect(r.rendered[0].Kind).To(Equal(trace.KindDone))

				_, ok := q.Next()
				Expect(ok).To(BeTrue())
				Expect(q.Cursor()).To(Equal(0))
				_, ok = q.Prev()
				Expect(ok).To(BeTrue())
				Expect(q.Cursor()).To(Equal(0))
				Expect(q.Progress()).To(Equal("1 / 1"))
			}
		})
	})

	Context("with a renderer func", func() {
		It("adapts plain functions", func() {
			var got []trace.Kind
			q := player.New(lg, player.WithRenderer(player.RendererFunc(func(s trace.Step) {
				got = append(got, s.Kind)
			})))
			q.Next()
			q.Next()
			Expect(got).To(Equal([]trace.Kind{trace.KindStart, trace.KindSelect}))
		})
	})
})
