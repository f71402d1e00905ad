package activity_test

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/activity"
	"github.com/recallhq/recall/pkg/dailylog"
	"github.com/recallhq/recall/pkg/hookio"
	"github.com/recallhq/recall/pkg/project"
)

var _ = Describe("Logger", func() {
	var (
		root   string
		store  *dailylog.Store
		logger *activity.Logger
		now    time.Time
	)

	BeforeEach(func() {
		var err error
		root, err = os.MkdirTemp("", "activity-test-*")
		Expect(err).NotTo(HaveOccurred())

		ctx := project.Context{Root: root, Cwd: root}
		store = dailylog.NewStore(filepath.Join(root, "daily"))
		logger = activity.NewLogger(ctx, store, 60)
		now = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	})

	AfterEach(func() {
		os.RemoveAll(root)
	})

	load := func() *dailylog.Document {
		doc, err := store.Load("2026-03-14")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).NotTo(BeNil())
		return doc
	}

	It("records an edit with a relative path and quoted snippet", func() {
		Expect(logger.Record(hookio.ToolEvent{
			Kind:    hookio.EventEdit,
			Path:    filepath.Join(root, "src", "app.ts"),
			NewText: "const x = 1\nconst y = 2",
		}, now)).To(Succeed())

		entries := load().Activities()
		last := entries[len(entries)-1]
		Expect(last.Kind).To(Equal(dailylog.KindEdited))
		Expect(last.Path).To(Equal("src/app.ts"))
		Expect(last.Detail).To(Equal(`"const x = 1"`))
	})

	It("records a write with a character count", func() {
		Expect(logger.Record(hookio.ToolEvent{
			Kind:    hookio.EventWrite,
			Path:    filepath.Join(root, "docs", "notes.md"),
			Content: strings.Repeat("a", 240),
		}, now)).To(Succeed())

		entries := load().Activities()
		last := entries[len(entries)-1]
		Expect(last.Kind).To(Equal(dailylog.KindCreated))
		Expect(last.Detail).To(Equal("~240 chars"))
	})

	It("truncates long commands to the snippet length", func() {
		long := strings.Repeat("x", 100)
		Expect(logger.Record(hookio.ToolEvent{Kind: hookio.EventBash, Command: long}, now)).To(Succeed())

		entries := load().Activities()
		last := entries[len(entries)-1]
		Expect(last.Kind).To(Equal(dailylog.KindRan))
		Expect(last.Detail).To(HaveSuffix("..."))
		Expect(len(last.Detail)).To(Equal(63))
	})

	It("drops events targeting denylisted paths", func() {
		Expect(logger.Record(hookio.ToolEvent{
			Kind:    hookio.EventEdit,
			Path:    filepath.Join(root, "node_modules", "pkg", "index.js"),
			NewText: "x",
		}, now)).To(Succeed())

		doc, err := store.Load("2026-03-14")
		Expect(err).NotTo(HaveOccurred())
		Expect(doc).To(BeNil()) // nothing was ever written
	})
})

var _ = Describe("Loggable", func() {
	It("rejects noise paths case-insensitively", func() {
		Expect(activity.Loggable("src/app.ts")).To(BeTrue())
		Expect(activity.Loggable("Node_Modules/left-pad/index.js")).To(BeFalse())
		Expect(activity.Loggable(".git/HEAD")).To(BeFalse())
		Expect(activity.Loggable("project/.claude/memory/MEMORY.md")).To(BeFalse())
		Expect(activity.Loggable("package-lock.json")).To(BeFalse())
		Expect(activity.Loggable("app/dist/bundle.js")).To(BeFalse())
	})
})
