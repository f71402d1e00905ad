package hookio_test

import (
	"bytes"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/hookio"
)

var _ = Describe("BestEffort", func() {
	var (
		buf *bytes.Buffer
		log *slog.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = slog.New(slog.NewTextHandler(buf, nil))
	})

	It("runs the step and returns nil on success", func() {
		ran := false
		Expect(hookio.BestEffort(log, "ok", func() error {
			ran = true
			return nil
		})).To(BeNil())
		Expect(ran).To(BeTrue())
		Expect(buf.String()).To(BeEmpty())
	})

	It("reduces errors to a logged warning", func() {
		Expect(hookio.BestEffort(log, "broken", func() error {
			return errors.New("disk full")
		})).To(BeNil())
		Expect(buf.String()).To(ContainSubstring("hook step failed"))
		Expect(buf.String()).To(ContainSubstring("disk full"))
	})

	It("recovers panics", func() {
		Expect(hookio.BestEffort(log, "explode", func() error {
			panic("boom")
		})).To(BeNil())
		Expect(buf.String()).To(ContainSubstring("hook step panicked"))
		Expect(buf.String()).To(ContainSubstring("boom"))
	})
})
