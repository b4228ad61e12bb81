package main_test

import (
	"os/exec"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("bsdmon", func() {
	It("prints one snapshot and exits cleanly", func() {
		session, err := gexec.Start(exec.Command(binPath), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, 10*time.Second).Should(gexec.Exit(0))

		Expect(session.Out).To(gbytes.Say(`bsdmon - System Monitor\n=======================\n`))
		Expect(session.Out).To(gbytes.Say(`CPU Usage: \d+\.\d{2}%\n`))
		Expect(session.Out).To(gbytes.Say(`Memory Usage: \d+\.\d{2} GB / \d+\.\d{2} GB \(\d+\.\d{2}% used\)\n`))
		Expect(session.Out).To(gbytes.Say(`Disk Usage \("/"\): \d+\.\d{2} GB / \d+\.\d{2} GB \(\d+\.\d{2}% used\)\n`))
		Expect(session.Out).To(gbytes.Say(`Network interfaces:\n`))
		Expect(session.Out).NotTo(gbytes.Say(`127\.0\.0\.1`))
	})

	It("takes at least the one second sampling window", func() {
		start := time.Now()
		session, err := gexec.Start(exec.Command(binPath), GinkgoWriter, GinkgoWriter)
		Expect(err).NotTo(HaveOccurred())
		Eventually(session, 10*time.Second).Should(gexec.Exit(0))
		Expect(time.Since(start)).To(BeNumerically(">=", time.Second))
	})
})
