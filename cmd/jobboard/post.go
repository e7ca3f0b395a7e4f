package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/accessibilityjobs/jobboard/internal/geo"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
	"github.com/accessibilityjobs/jobboard/internal/observability"
	"github.com/accessibilityjobs/jobboard/internal/postflow"
)

var postServerURL string

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Post a job through the interactive multi-step flow",
	Long:  `Walk through the posting steps interactively, with timezone, country, and currency pre-filled from the local environment, and submit the finished posting to a running board.`,
	RunE:  runPost,
}

func init() {
	postCmd.Flags().StringVar(&postServerURL, "server", "http://localhost:8080", "Base URL of the board API")
	rootCmd.AddCommand(postCmd)
}

func runPost(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(os.Stdin)
	printer := observability.NewPrinter(out)

	ctrl := postflow.New(geo.NewSystemDetector(), postflow.NewHTTPSubmitter(postServerURL))
	ctrl.Start(ctx)

	for {
		step := postflow.StepInfo(ctrl.Step())
		printer.PrintStep(step)
		promptStep(ctrl, in, out, step.Number)

		if step.Number < postflow.StepCount {
			if ask(in, out, "[n]ext / [b]ack: ") == "b" {
				ctrl.Previous()
			} else {
				ctrl.Next()
			}
			continue
		}

		printer.PrintDraftSummary(ctrl.Draft())
		switch ask(in, out, "[s]ubmit / [b]ack / [q]uit: ") {
		case "b":
			ctrl.Previous()
		case "q":
			return nil
		case "s":
			record, err := ctrl.Submit(ctx)
			if err != nil {
				var fieldErrs jobs.FieldErrors
				if errors.As(err, &fieldErrs) {
					printer.PrintValidationErrors(fieldErrs)
				} else {
					fmt.Fprintf(out, "Submission failed: %v\n", err)
				}
				continue
			}
			printer.PrintSubmissionResult(record)
			return nil
		}
	}
}

func promptStep(ctrl *postflow.Controller, in *bufio.Scanner, out io.Writer, step int) {
	ctrl.Update(func(sub *jobs.JobSubmission) {
		switch step {
		case 1:
			sub.Title = promptString(in, out, "Job title", sub.Title)
			sub.Company = promptString(in, out, "Company", sub.Company)
			sub.CompanyWebsite = promptString(in, out, "Company website", sub.CompanyWebsite)
			sub.EmploymentType = promptChoice(in, out, "Employment type", jobs.EmploymentTypes, sub.EmploymentType)
			sub.JobLevel = promptChoice(in, out, "Job level", jobs.JobLevels, sub.JobLevel)
		case 2:
			sub.WorkArrangement = promptChoice(in, out, "Work arrangement", jobs.WorkArrangements, sub.WorkArrangement)
			sub.City = promptString(in, out, "City", sub.City)
			sub.Country = promptString(in, out, "Country", sub.Country)
			sub.Timezone = promptString(in, out, "Timezone", sub.Timezone)
		case 3:
			sub.SalaryMin = promptInt(in, out, "Salary minimum", sub.SalaryMin)
			sub.SalaryMax = promptInt(in, out, "Salary maximum", sub.SalaryMax)
			sub.Currency = promptChoice(in, out, "Currency", jobs.Currencies, sub.Currency)
			sub.SalaryType = promptChoice(in, out, "Salary type", jobs.SalaryTypes, sub.SalaryType)
			sub.Benefits = promptList(in, out, "Benefits (comma-separated)", sub.Benefits)
		case 4:
			sub.YearsExperience = promptChoice(in, out, "Years of experience", jobs.ExperienceLevels, sub.YearsExperience)
			sub.EducationLevel = promptChoice(in, out, "Education level", jobs.EducationLevels, sub.EducationLevel)
			sub.RequiredCertifications = promptList(in, out, "Required certifications (comma-separated)", sub.RequiredCertifications)
		case 5:
			sub.RequiredSkills = promptList(in, out, "Required skills (comma-separated)", sub.RequiredSkills)
			sub.PreferredSkills = promptList(in, out, "Preferred skills (comma-separated)", sub.PreferredSkills)
			sub.AccessibilityFocus = promptList(in, out, "Accessibility focus areas (comma-separated)", sub.AccessibilityFocus)
			sub.WCAGLevel = promptChoice(in, out, "WCAG level", jobs.WCAGLevels, sub.WCAGLevel)
		case 6:
			sub.Description = promptString(in, out, "Description", sub.Description)
			sub.KeyResponsibilities = promptString(in, out, "Key responsibilities", sub.KeyResponsibilities)
			sub.Requirements = promptString(in, out, "Requirements", sub.Requirements)
			sub.NiceToHave = promptString(in, out, "Nice to have", sub.NiceToHave)
			sub.ContactEmail = promptString(in, out, "Contact email", sub.ContactEmail)
		}
	})
}

func ask(in *bufio.Scanner, out io.Writer, prompt string) string {
	fmt.Fprint(out, prompt)
	if !in.Scan() {
		return "q"
	}
	return strings.ToLower(strings.TrimSpace(in.Text()))
}

// promptString reads one line; an empty answer keeps the current value.
func promptString(in *bufio.Scanner, out io.Writer, label, current string) string {
	if current != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, current)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	if !in.Scan() {
		return current
	}
	answer := strings.TrimSpace(in.Text())
	if answer == "" {
		return current
	}
	return answer
}

func promptChoice(in *bufio.Scanner, out io.Writer, label string, options []jobs.Option, current string) string {
	return promptString(in, out, fmt.Sprintf("%s (%s)", label, strings.Join(jobs.Values(options), ", ")), current)
}

func promptInt(in *bufio.Scanner, out io.Writer, label string, current *int) *int {
	shown := ""
	if current != nil {
		shown = strconv.Itoa(*current)
	}
	answer := promptString(in, out, label, shown)
	if answer == "" {
		return current
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintf(out, "Not a number, skipping %s\n", label)
		return current
	}
	return &n
}

func promptList(in *bufio.Scanner, out io.Writer, label string, current []string) []string {
	answer := promptString(in, out, label, strings.Join(current, ", "))
	if answer == "" {
		return current
	}
	parts := strings.Split(answer, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			list = append(list, p)
		}
	}
	return list
}
