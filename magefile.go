//go:build mage
// +build mage

package main

import (
	"fmt"
	"net"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg" // mg contains helpful utility functions, like Deps
	"github.com/magefile/mage/sh"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

var Default = Build

type Remote mg.Namespace

var (
	buildDir = "bin"
	binName  = "bsdmon"
	pkg      = "./cmd/bsdmon"
)

// Builds bsdmon for the current platform
func Build() error {
	fmt.Println("Building...")
	return sh.RunV("go", "build", "-o", filepath.Join(buildDir, binName), pkg)
}

// Runs the test suites
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cross-compiles bsdmon for linux and freebsd on amd64 and arm64
func Cross() error {
	for _, goos := range []string{"linux", "freebsd"} {
		for _, goarch := range []string{"amd64", "arm64"} {
			if err := crossBuild(goos, goarch); err != nil {
				return err
			}
		}
	}
	return nil
}

// Removes build output
func Clean() {
	fmt.Println("Cleaning...")
	os.RemoveAll(buildDir)
}

func crossBuild(goos, goarch string) error {
	fmt.Printf("Building %s/%s...\n", goos, goarch)
	env := map[string]string{
		"GOOS":        goos,
		"GOARCH":      goarch,
		"CGO_ENABLED": "0",
	}
	return sh.RunWithV(env, "go", "build", "-o", crossBinary(goos, goarch), pkg)
}

func crossBinary(goos, goarch string) string {
	return filepath.Join(buildDir, goos+"_"+goarch, binName)
}

// Builds bsdmon for the host's platform (e.g. freebsd amd64) and copies it over SCP.
// Assumes you have SSH keys setup for the host.
func (Remote) Deploy(host, username, goos, goarch string) error {
	if err := crossBuild(goos, goarch); err != nil {
		return err
	}
	connStr := fmt.Sprintf("%s@%s", username, host)
	deployPath := "/home/" + username + "/bsdmon"
	fmt.Printf("Copying binary via SCP to %s:%s\n", connStr, deployPath)

	err := sh.Run("ssh", connStr, "mkdir -p", deployPath)
	if err != nil {
		return fmt.Errorf("failed to create deploy path on host: %w", err)
	}
	err = sh.Run("scp", crossBinary(goos, goarch), fmt.Sprintf("%s:%s/%s", connStr, deployPath, binName))
	if err != nil {
		return fmt.Errorf("failed to deploy to host: %w", err)
	}
	return nil
}

// Deploys bsdmon to the host and prints one report from it, using SSH.
func (Remote) Run(host, username, goos, goarch string) error {
	mg.Deps(mg.F(Remote.Deploy, host, username, goos, goarch))
	client, err := sshClient(username, host)
	if err != nil {
		return fmt.Errorf("failed to create SSH client: %w", err)
	}
	defer client.Close()
	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create SSH session: %w", err)
	}
	defer session.Close()

	session.Stdout = os.Stdout
	session.Stderr = os.Stderr
	err = session.Run("~/bsdmon/" + binName)
	if err != nil {
		if exitErr, ok := err.(*ssh.ExitError); ok {
			return fmt.Errorf("bsdmon exited with status %d", exitErr.ExitStatus())
		}
		return fmt.Errorf("failed to run bsdmon on host: %w", err)
	}
	return nil
}

func sshClient(user, host string) (*ssh.Client, error) {
	var authMethods []ssh.AuthMethod

	// Try to connect to SSH agent
	conn, err := net.Dial("unix", os.Getenv("SSH_AUTH_SOCK"))
	if err == nil {
		agent := agent.NewClient(conn)
		signers, err := agent.Signers()
		if err == nil {
			signers = preferRSASHA2(signers)
			authMethods = append(authMethods, ssh.PublicKeys(signers...))
		}
	}

	if len(authMethods) == 0 {
		fmt.Println("No SSH keys found...")
	}

	config := &ssh.ClientConfig{
		User:            user,
		Auth:            authMethods,
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // Dev only.
	}
	addr := host + ":22"
	fmt.Println("Dialing SSH client to", addr)
	return ssh.Dial("tcp", addr, config)
}

func preferRSASHA2(signers []ssh.Signer) []ssh.Signer {
	var out []ssh.Signer
	for _, signer := range signers {
		if signer.PublicKey().Type() == ssh.KeyAlgoRSA {
			if algSigner, ok := signer.(ssh.AlgorithmSigner); ok {
				if mas, err := ssh.NewSignerWithAlgorithms(
					algSigner,
					[]string{
						ssh.KeyAlgoRSASHA256,
						ssh.KeyAlgoRSASHA512,
					},
				); err == nil {
					out = append(out, mas)
					continue
				}
			}
		}
		out = append(out, signer)
	}
	return out
}
