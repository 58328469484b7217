package types_test

import (
	"sync"

	"github.com/mudler/LocalNotes/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RunState", func() {
	It("records which ids have been surfaced", func() {
		state := types.NewRunState("run-1")
		Expect(state.Seen(7)).To(BeFalse())

		state.MarkSeen(7)
		Expect(state.Seen(7)).To(BeTrue())
		Expect(state.Seen(8)).To(BeFalse())
	})

	It("fails closed on a nil state", func() {
		var state *types.RunState
		state.MarkSeen(7)
		Expect(state.Seen(7)).To(BeFalse())
	})

	It("tracks ids marked from concurrent tool invocations", func() {
		state := types.NewRunState("run-1")

		var wg sync.WaitGroup
		for i := 0; i < 64; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				state.MarkSeen(id)
				state.Seen(id)
			}(int64(i))
		}
		wg.Wait()

		for i := int64(0); i < 64; i++ {
			Expect(state.Seen(i)).To(BeTrue())
		}
	})
})
