package gitinfo_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/gitinfo"
)

var _ = Describe("Client", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "gitinfo-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, dir)
	})

	Describe("outside a repository", func() {
		It("reports the branch as unknown", func() {
			c := gitinfo.NewClient(dir, time.Second)
			Expect(c.CurrentBranch()).To(Equal("unknown"))
		})

		It("reports zero unpushed commits", func() {
			c := gitinfo.NewClient(dir, time.Second)
			Expect(c.UnpushedCommits()).To(BeZero())
		})
	})

	It("applies the default timeout for non-positive values", func() {
		c := gitinfo.NewClient(dir, 0)
		Expect(c.CurrentBranch()).To(Equal("unknown"))
	})
})
