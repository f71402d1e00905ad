package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/recallhq/recall/pkg/config"
)

var _ = Describe("Load", func() {
	var root string

	BeforeEach(func() {
		var err error
		root, err = os.MkdirTemp("", "config-test-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, root)

		os.Unsetenv("RECALL_MEMORY_RETENTION_DAYS")
	})

	It("returns defaults when no config file exists", func() {
		cfg, err := config.Load(root)
		Expect(err).NotTo(HaveOccurred())

		defaults := config.NewDefaultConfig()
		Expect(cfg.Memory.RetentionDays).To(Equal(defaults.Memory.RetentionDays))
		Expect(cfg.Memory.MaxDocBytes).To(Equal(defaults.Memory.MaxDocBytes))
		Expect(cfg.Memory.SnippetLength).To(Equal(defaults.Memory.SnippetLength))
		Expect(cfg.Git.TimeoutSeconds).To(Equal(defaults.Git.TimeoutSeconds))
	})

	It("layers file values over defaults", func() {
		Expect(os.MkdirAll(filepath.Join(root, ".claude"), 0o755)).To(Succeed())
		data := "[memory]\nretention_days = 30\n"
		Expect(os.WriteFile(config.Path(root), []byte(data), 0o644)).To(Succeed())

		cfg, err := config.Load(root)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Memory.RetentionDays).To(Equal(30))
		Expect(cfg.Memory.SnippetLength).To(Equal(config.NewDefaultConfig().Memory.SnippetLength))
	})

	It("lets environment variables override the file", func() {
		Expect(os.MkdirAll(filepath.Join(root, ".claude"), 0o755)).To(Succeed())
		data := "[memory]\nretention_days = 30\n"
		Expect(os.WriteFile(config.Path(root), []byte(data), 0o644)).To(Succeed())

		Expect(os.Setenv("RECALL_MEMORY_RETENTION_DAYS", "7")).To(Succeed())
		DeferCleanup(os.Unsetenv, "RECALL_MEMORY_RETENTION_DAYS")

		cfg, err := config.Load(root)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Memory.RetentionDays).To(Equal(7))
	})
})

var _ = Describe("Set and Get", func() {
	var root string

	BeforeEach(func() {
		var err error
		root, err = os.MkdirTemp("", "config-set-*")
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(os.RemoveAll, root)
	})

	It("round-trips a value through the file", func() {
		Expect(config.Set(root, "memory.snippet_length", 80)).To(Succeed())

		value, err := config.Get(root, "memory.snippet_length")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(80))

		// Untouched keys keep their defaults.
		value, err = config.Get(root, "git.timeout_seconds")
		Expect(err).NotTo(HaveOccurred())
		Expect(value).To(Equal(config.NewDefaultConfig().Git.TimeoutSeconds))
	})

	It("rejects unknown keys", func() {
		Expect(config.Set(root, "memory.bogus", 1)).NotTo(Succeed())
		_, err := config.Get(root, "nope")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("ValidConfigKeys", func() {
	It("lists the supported keys sorted", func() {
		Expect(config.ValidConfigKeys()).To(Equal([]string{
			"git.timeout_seconds",
			"memory.max_doc_bytes",
			"memory.retention_days",
			"memory.snippet_length",
		}))
		Expect(config.IsValidConfigKey("memory.retention_days")).To(BeTrue())
		Expect(config.IsValidConfigKey("memory.retention")).To(BeFalse())
	})
})
