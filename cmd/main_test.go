package main_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"regexp"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("main", func() {

	var dir, outputPath string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "cmd")
		Expect(err).ToNot(HaveOccurred())

		outputPath = filepath.Join(dir, "results")
		err = os.Mkdir(outputPath, 0700)
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		err := os.RemoveAll(dir)
		Expect(err).ToNot(HaveOccurred())
	})

	Context("when called with no arguments", func() {
		It("outputs command help to stderr", func() {
			command := exec.Command(storycutCLI)
			command.Env = []string{}
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say(regexp.QuoteMeta("storycut [OUTPUT DIR]")))
		})
	})
	Context("when called with extra arguments", func() {
		It("outputs command help to stderr", func() {
			command := exec.Command(storycutCLI, outputPath, "extra")
			command.Env = []string{}
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say(regexp.QuoteMeta("storycut [OUTPUT DIR]")))
		})
	})
	Context("when called without a gemini api key", func() {
		It("outputs an error about the api key", func() {
			command := exec.Command(storycutCLI, outputPath)
			command.Dir = dir
			command.Env = []string{}
			session, err := gexec.Start(command, GinkgoWriter, GinkgoWriter)
			Expect(err).ToNot(HaveOccurred())
			Eventually(session).Should(gexec.Exit(1))
			Eventually(session.Err).Should(gbytes.Say("GEMINI_API_KEY"))
		})
	})
})
