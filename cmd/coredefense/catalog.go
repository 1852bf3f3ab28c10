package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/core-defense/internal/core"
	"github.com/vovakirdan/core-defense/internal/games/coredefense/sim"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List tags, stat upgrades, relics and synergies",
	Args:  cobra.NoArgs,
	Run:   runCatalog,
}

func runCatalog(_ *cobra.Command, _ []string) {
	fmt.Println("Tags")
	for _, d := range sim.Tags() {
		note := ""
		if !d.Offerable {
			note = "  (not offered)"
		}
		fmt.Printf("  %-7s %-14s %-5s %s%s\n", d.ID, d.Name, strings.Repeat("*", d.Rarity), d.Desc, note)
	}

	fmt.Println()
	fmt.Println("Stat upgrades")
	for _, u := range sim.StatUpgrades() {
		fmt.Printf("  %-7s %-14s %-5s %s\n", u.ID, u.Name, strings.Repeat("*", u.Rarity), u.Desc)
	}

	fmt.Println()
	fmt.Println("Relics")
	for _, r := range sim.Relics() {
		fmt.Printf("  %-9s %-14s %s\n", r.ID, r.Name, r.Desc)
	}

	fmt.Println()
	fmt.Println("Sound cues")
	var cues []string
	for _, c := range core.AllCues() {
		cues = append(cues, c.String())
	}
	fmt.Printf("  %s\n", strings.Join(cues, ", "))

	fmt.Println()
	fmt.Println("Synergies")
	for _, s := range sim.Synergies() {
		fmt.Printf("  %-15s %s + %s  %s\n", s.Name, s.Requires[0], s.Requires[1], s.Desc)
	}
}
