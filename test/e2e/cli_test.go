/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
	"gopkg.in/yaml.v3"

	"github.com/samueltardieu/assignments/api/v1alpha1"
)

const timeout = 30 * time.Second

func runAssignments(env []string, stdin string, args ...string) *gexec.Session {
	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	EventuallyWithOffset(1, session, timeout).Should(gexec.Exit())
	return session
}

var _ = Describe("assignments", func() {
	var dir string

	writeFixture := func(name, content string) string {
		path := filepath.Join(dir, name)
		Expect(os.WriteFile(path, []byte(content), 0o600)).To(Succeed())
		return path
	}

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Context("with agents wanting different slots", func() {
		var input string

		BeforeEach(func() {
			input = writeFixture("prefs.csv", "Alice,1,2\nBob,2,1\n")
		})

		It("should print one line per agent", func() {
			session := runAssignments(nil, "", input)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(Equal("Alice -> 1\nBob -> 2\n"))
			Expect(session.Err.Contents()).To(BeEmpty())
		})

		It("should print ranks and totals in verbose mode", func() {
			session := runAssignments(nil, "", "-v", input)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`Alice -> 1 \(choice ranked 1\)`))
			Expect(session.Out).To(gbytes.Say(`Bob -> 2 \(choice ranked 1\)`))
			Expect(session.Out).To(gbytes.Say(`Total satisfaction: 16`))
			Expect(session.Out).To(gbytes.Say(`  - rank 1: 2`))
			Expect(string(session.Out.Contents())).NotTo(ContainSubstring("unranked"))
		})

		It("should read parameters from the environment", func() {
			session := runAssignments([]string{"ASSIGN_MULT=1", "ASSIGN_VERBOSE=true"}, "", input)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`Total satisfaction: 4`))
		})

		It("should render a yaml report", func() {
			session := runAssignments(nil, "", "-o", "yaml", input)
			Expect(session.ExitCode()).To(Equal(0))

			var rep v1alpha1.AssignmentReport
			Expect(yaml.Unmarshal(session.Out.Contents(), &rep)).To(Succeed())
			Expect(rep.Kind).To(Equal(v1alpha1.ReportKind))
			Expect(rep.Summary.TotalSatisfaction).To(Equal(int64(16)))
			Expect(rep.Assignments).To(HaveLen(2))
		})

		It("should write the metrics file", func() {
			metricsPath := filepath.Join(dir, "run.prom")
			session := runAssignments(nil, "", "--metrics-file", metricsPath, input)
			Expect(session.ExitCode()).To(Equal(0))

			data, err := os.ReadFile(metricsPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("assignments_total_satisfaction 16"))
		})
	})

	Context("with more slots than agents", func() {
		It("should report unranked agents", func() {
			input := writeFixture("prefs.csv", "Alice,1\nBob,1\n")
			session := runAssignments(nil, "", "-v", "-n", "3", input)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`Alice -> 1 \(choice ranked 1\)`))
			Expect(session.Out).To(gbytes.Say(`Bob -> 2 \(unranked\)`))
			Expect(session.Out).To(gbytes.Say(`Total satisfaction: 12`))
			Expect(session.Out).To(gbytes.Say(`  - unranked: 1`))
		})
	})

	Context("when reading standard input", func() {
		It("should accept a custom delimiter", func() {
			session := runAssignments(nil, "Alice;1\nBob;2\n", "--delimiter", ";", "-")
			Expect(session.ExitCode()).To(Equal(0))
			Expect(string(session.Out.Contents())).To(Equal("Alice -> 1\nBob -> 2\n"))
		})
	})

	Context("with a generated preference file", func() {
		It("should be accepted by the solver", func() {
			gen := runAssignments(nil, "", "generate", "15", "--seed", "11")
			Expect(gen.ExitCode()).To(Equal(0))
			Expect(gen.Out).To(gbytes.Say(`Student 1\b`))

			input := writeFixture("generated.csv", string(gen.Out.Contents()))
			session := runAssignments(nil, "", "-v", input)
			Expect(session.ExitCode()).To(Equal(0))
			Expect(strings.Count(string(session.Out.Contents()), " -> ")).To(Equal(15))
			Expect(session.Out).To(gbytes.Say(`Total satisfaction: `))
		})
	})

	DescribeTable("failing runs",
		func(content string, args []string, message string) {
			input := writeFixture("prefs.csv", content)
			session := runAssignments(nil, "", append(args, input)...)
			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Out.Contents()).To(BeEmpty())
			Expect(string(session.Err.Contents())).To(HavePrefix("Error: "))
			Expect(string(session.Err.Contents())).To(ContainSubstring(message))
		},
		Entry("insufficient slots", "Alice,1\nBob,1\n", []string{"-n", "1"}, "numSlots"),
		Entry("duplicate agent", "Alice,1\nAlice,2\n", []string{}, `duplicate agent "Alice"`),
		Entry("choice out of range", "Alice,3\nBob,1\n", []string{}, "Alice has made an unacceptable choice: 3 (not in [1..2])"),
		Entry("duplicate choice", "Alice,1,1\nBob,2\n", []string{}, "Alice has a duplicate choice: 1"),
		Entry("non-integer choice", "Alice,first\n", []string{}, "field 2"),
		Entry("invalid multiplier", "Alice,1\n", []string{"-m", "0"}, "mult"),
	)

	It("should fail without an input file", func() {
		session := runAssignments(nil, "")
		Expect(session.ExitCode()).To(Equal(1))
		Expect(session.Err).To(gbytes.Say("Error: "))
	})
})
