package learnings_test

import (
	"fmt"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/learnings"
)

var _ = Describe("Store", func() {
	var (
		dir   string
		store *learnings.Store
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "learnings-test-*")
		Expect(err).NotTo(HaveOccurred())
		store = learnings.NewStore(filepath.Join(dir, "memory", "learnings.json"))
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	record := func(desc string) learnings.Record {
		return learnings.Record{
			Type:        learnings.TypeDecision,
			Description: desc,
			Confidence:  0.9,
			Date:        "2026-03-14",
			Files:       []string{},
			Source:      "decisions-section",
		}
	}

	It("loads an empty file when nothing exists", func() {
		f := store.Load()
		Expect(f.Learnings).To(BeEmpty())
		Expect(f.LastUpdated).To(BeEmpty())
	})

	It("loads an empty file for malformed content", func() {
		path := filepath.Join(dir, "memory", "learnings.json")
		Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
		Expect(os.WriteFile(path, []byte("{broken"), 0o644)).To(Succeed())

		Expect(store.Load().Learnings).To(BeEmpty())
	})

	It("appends records and stamps last_updated", func() {
		Expect(store.Append([]learnings.Record{record("one"), record("two")}, extractedAt)).To(Succeed())

		f := store.Load()
		Expect(f.Learnings).To(HaveLen(2))
		Expect(f.Learnings[0].Description).To(Equal("one"))
		Expect(f.LastUpdated).To(Equal("2026-03-14T18:00:00Z"))
	})

	It("is a no-op for an empty batch", func() {
		Expect(store.Append(nil, extractedAt)).To(Succeed())
		_, err := os.Stat(filepath.Join(dir, "memory", "learnings.json"))
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("truncates to the newest 100 records", func() {
		var batch []learnings.Record
		for i := 0; i < 95; i++ {
			batch = append(batch, record(fmt.Sprintf("old-%d", i)))
		}
		Expect(store.Append(batch, extractedAt)).To(Succeed())

		batch = nil
		for i := 0; i < 10; i++ {
			batch = append(batch, record(fmt.Sprintf("new-%d", i)))
		}
		Expect(store.Append(batch, extractedAt)).To(Succeed())

		f := store.Load()
		Expect(f.Learnings).To(HaveLen(100))
		Expect(f.Learnings[0].Description).To(Equal("old-5"))
		Expect(f.Learnings[99].Description).To(Equal("new-9"))
	})
})
