package archive_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/archive"
	"github.com/recallhq/recall/pkg/dailylog"
)

var _ = Describe("Archiver", func() {
	var (
		dir        string
		store      *dailylog.Store
		archiveDir string
		now        time.Time
		quiet      *slog.Logger
	)

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "archive-test-*")
		Expect(err).NotTo(HaveOccurred())

		store = dailylog.NewStore(filepath.Join(dir, "daily"))
		archiveDir = filepath.Join(dir, "archive")
		now = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		quiet = slog.New(slog.NewTextHandler(io.Discard, nil))
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	writeLog := func(date string) {
		Expect(os.MkdirAll(filepath.Join(dir, "daily"), 0o755)).To(Succeed())
		Expect(os.WriteFile(store.Path(date), []byte("# "+date+"\n"), 0o644)).To(Succeed())
	}

	It("moves logs older than the retention window into month buckets", func() {
		writeLog("2026-01-20") // expired, January bucket
		writeLog("2026-02-25") // expired, February bucket
		writeLog("2026-03-10") // inside the window
		writeLog("2026-03-14") // today

		moved, err := archive.New(store, archiveDir, 14, quiet).Run(now)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(Equal(2))

		Expect(filepath.Join(archiveDir, "2026-01", "2026-01-20.md")).To(BeARegularFile())
		Expect(filepath.Join(archiveDir, "2026-02", "2026-02-25.md")).To(BeARegularFile())
		Expect(store.Path("2026-03-10")).To(BeARegularFile())
		Expect(store.Path("2026-03-14")).To(BeARegularFile())
	})

	It("keeps a log exactly at the boundary", func() {
		writeLog("2026-02-28") // now minus 14 days exactly

		moved, err := archive.New(store, archiveDir, 14, quiet).Run(now)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(BeZero())
		Expect(store.Path("2026-02-28")).To(BeARegularFile())
	})

	It("is a no-op on re-run", func() {
		writeLog("2026-01-20")

		archiver := archive.New(store, archiveDir, 14, quiet)
		moved, err := archiver.Run(now)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(Equal(1))

		moved, err = archiver.Run(now)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(BeZero())
	})

	It("handles a missing daily directory", func() {
		moved, err := archive.New(store, archiveDir, 14, quiet).Run(now)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(BeZero())
	})

	It("falls back to the default retention for non-positive values", func() {
		writeLog("2026-03-05") // nine days old

		moved, err := archive.New(store, archiveDir, 0, quiet).Run(now)
		Expect(err).NotTo(HaveOccurred())
		Expect(moved).To(BeZero()) // default window is 14 days
	})
})
