// ABOUTME: CLI commands for creating, editing, and showing the user profile.
// ABOUTME: Validates onboarding fields at the boundary before they reach the repo.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/stats"
)

var (
	profileName   string
	profileAge    int
	profileWeight float64
	profileHeight float64
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create or update your profile",
	Long: `Create or update your profile. On first run all four fields are
required; afterwards any subset updates the existing profile.

Examples:
  fittrack profile set --name Ada --age 34 --weight 62 --height 170
  fittrack profile set --weight 61.5`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if profileAge != 0 && (profileAge < 1 || profileAge > 120) {
			return fmt.Errorf("age must be between 1 and 120")
		}
		if profileWeight < 0 || profileHeight < 0 {
			return fmt.Errorf("weight and height must be positive")
		}

		existing := repos.Profile.Profile()
		if existing == nil {
			if profileName == "" || profileAge == 0 || profileWeight == 0 || profileHeight == 0 {
				return fmt.Errorf("first run requires --name, --age, --weight, and --height")
			}
			p := models.NewProfile(profileName, profileAge, profileWeight, profileHeight)
			if err := repos.Profile.Save(p); err != nil {
				return fmt.Errorf("failed to save profile: %w", err)
			}
			color.Green("✓ Profile created")
			fmt.Printf("  Welcome, %s!\n", p.Name)
			return nil
		}

		err := repos.Profile.Update(func(p *models.Profile) {
			if profileName != "" {
				p.Name = profileName
			}
			if profileAge != 0 {
				p.Age = profileAge
			}
			if profileWeight != 0 {
				p.Weight = profileWeight
			}
			if profileHeight != 0 {
				p.Height = profileHeight
			}
		})
		if err != nil {
			return fmt.Errorf("failed to update profile: %w", err)
		}

		color.Green("✓ Profile updated")
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show your profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := repos.Profile.Profile()
		if p == nil {
			fmt.Println("No profile yet. Run 'fittrack profile set' to create one.")
			return nil
		}

		faint := color.New(color.Faint)
		fmt.Printf("%s\n", color.New(color.Bold).Sprint(p.Name))
		fmt.Printf("  Age     %d\n", p.Age)
		fmt.Printf("  Weight  %.1f kg\n", p.Weight)
		fmt.Printf("  Height  %.1f cm\n", p.Height)
		fmt.Printf("  %s\n", faint.Sprintf("member since %s", stats.FormatDate(p.CreatedAt, nowFunc())))

		if !p.Complete() {
			color.Yellow("  Profile is incomplete")
		}
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileName, "name", "", "your name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "age in years (1-120)")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "height in cm")
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}
