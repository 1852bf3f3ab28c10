package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/core-defense/internal/meta"
	"github.com/vovakirdan/core-defense/internal/platform/tui"
	"github.com/vovakirdan/core-defense/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Buy permanent upgrades",
	Long: `Spend credits earned by runs on permanent upgrades.

Without a subcommand the interactive shop opens.

Categories:
  hull        - Max HP
  power       - Attack
  mining      - XP gain
  precision   - Crit rate
  overcharge  - Crit damage
  entropy     - Luck

Examples:
  coredefense shop
  coredefense shop list
  coredefense shop profiles
  coredefense shop buy hull
  coredefense shop buy power --player alice`,
	Args: cobra.NoArgs,
	Run:  runShop,
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show levels and prices",
	Args:  cobra.NoArgs,
	Run:   runShopList,
}

var shopBuyCmd = &cobra.Command{
	Use:       "buy <category>",
	Short:     "Buy the next level of a category",
	Args:      cobra.ExactArgs(1),
	ValidArgs: categoryNames(),
	Run:       runShopBuy,
}

var shopProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List saved profiles",
	Args:  cobra.NoArgs,
	Run:   runShopProfiles,
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
	shopCmd.AddCommand(shopProfilesCmd)
}

func categoryNames() []string {
	var names []string
	for _, c := range meta.Categories() {
		names = append(names, string(c))
	}
	return names
}

func runShop(_ *cobra.Command, _ []string) {
	deps, closeDeps := sessionDeps()
	defer closeDeps()
	if deps.Store == nil {
		fmt.Fprintln(os.Stderr, "Error: the shop needs the scores database")
		return
	}

	cfg := runtimeConfig()
	if err := tui.RunShop(deps, cfg.ScreenW, cfg.ScreenH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

// openProfile opens the store and loads the --player profile. The caller
// closes the store.
func openProfile() (*storage.Store, *meta.Profile) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	p, err := store.LoadProfile(playerName())
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error loading profile: %v\n", err)
		os.Exit(1)
	}
	return store, p
}

func runShopList(_ *cobra.Command, _ []string) {
	store, p := openProfile()
	defer store.Close()
	shop := meta.NewShop(loadConfig().Shop)

	fmt.Printf("Profile %s - %d credits\n", p.Name, p.Currency)
	fmt.Println()
	fmt.Printf("  %-11s  %-12s  %-5s  %-8s  %s\n", "Category", "Stat", "Level", "Bonus", "Next")
	fmt.Printf("  %-11s  %-12s  %-5s  %-8s  %s\n", "--------", "----", "-----", "-----", "----")

	for _, c := range meta.Categories() {
		lvl := p.Level(c)
		cost, err := shop.Cost(c, lvl)
		if err != nil {
			continue
		}
		fmt.Printf("  %-11s  %-12s  %-5d  %-8s  %d\n",
			c, c.Describe(), lvl, formatBonus(c, shop.Bonus(c)*float64(lvl)), cost)
	}
}

// formatBonus prints rate bonuses as percentages.
func formatBonus(c meta.Category, v float64) string {
	switch c {
	case meta.Hull, meta.Power:
		return fmt.Sprintf("+%g", v)
	default:
		return fmt.Sprintf("+%g%%", v*100)
	}
}

func runShopBuy(_ *cobra.Command, args []string) {
	c, err := meta.ParseCategory(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Categories: %v\n", categoryNames())
		os.Exit(1)
	}

	store, p := openProfile()
	defer store.Close()
	shop := meta.NewShop(loadConfig().Shop)

	if err := shop.Purchase(p, c); err != nil {
		if errors.Is(err, meta.ErrInsufficientFunds) {
			fmt.Fprintf(os.Stderr, "Not enough credits: %v\n", err)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if err := store.SaveProfile(p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving profile: %v\n", err)
		return
	}

	fmt.Printf("Bought %s level %d. %d credits left.\n", c, p.Level(c), p.Currency)
}

func runShopProfiles(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	names, err := store.Profiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	if len(names) == 0 {
		fmt.Println("No profiles yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %s\n", "Profile", "Credits", "Best")
	fmt.Printf("  %-16s  %-8s  %s\n", "-------", "-------", "----")
	for _, name := range names {
		p, err := store.LoadProfile(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", name, err)
			continue
		}
		fmt.Printf("  %-16s  %-8d  %d\n", p.Name, p.Currency, p.BestScore)
	}
}
