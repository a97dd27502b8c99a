package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/f3rmion/josa"
	"github.com/f3rmion/josa/hangul"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word-or-particle>",
	Short: "Inspect a word's final sound or a particle's spellings",
	Long: `Look something up in the particle catalog.

Given a particle form, show the particle that owns it: its morphs,
whether it takes a further suffix, and every tolerant spelling.

Given any other word, show the phoneme decomposition of its final
syllable, the coda used for particle selection, and every well-known
particle resolved for the word.

Example:
  josa lookup 은
  josa lookup 집
  josa lookup 미궁`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	registry, style, err := setup()
	if err != nil {
		return err
	}

	input := args[0]

	// A form the catalog fully recognizes is a particle lookup.
	if p := registry.Get(input); p != registry.Default() {
		if suffix, ok := p.Match(input); ok && suffix == "" {
			printParticle(input, p)
			return nil
		}
	}

	printWord(registry, style, input)
	return nil
}

func printParticle(form string, p *josa.Particle) {
	fmt.Printf("Particle: %s\n", form)
	fmt.Printf("  After consonant: %s\n", displayMorph(p.Morph1()))
	fmt.Printf("  After vowel:     %s\n", displayMorph(p.Morph2()))
	if p.Final() {
		fmt.Println("  Final: takes no further suffix")
	}
	if tolerances := p.Tolerances(); len(tolerances) > 0 {
		fmt.Printf("  Tolerant spellings: %s\n", strings.Join(tolerances, " "))
	}
}

func printWord(registry *josa.Registry, style josa.ToleranceStyle, word string) {
	fmt.Printf("Word: %s\n", word)

	var last rune
	for _, r := range word {
		last = r
	}
	if onset, nucleus, coda, err := hangul.Split(last); err == nil {
		fmt.Printf("  Final syllable: %c\n", last)
		fmt.Printf("    Onset:   %s\n", displayPhoneme(onset))
		fmt.Printf("    Nucleus: %s\n", displayPhoneme(nucleus))
		fmt.Printf("    Coda:    %s\n", displayPhoneme(coda))
	}

	if coda, ok := josa.GuessCoda(word); !ok {
		fmt.Println("  Final sound: undetermined")
	} else if coda == "" {
		fmt.Println("  Final sound: vowel")
	} else {
		fmt.Printf("  Final sound: %s\n", coda)
	}

	fmt.Println("  ---")
	for _, p := range registry.Particles() {
		form := p.Tolerance(style)
		fmt.Printf("  %s\t%s\n", form, registry.Postfix(word, form, josa.WithToleranceStyle(style)))
	}
	fmt.Printf("  %s\t%s\n", "이다", registry.Postfix(word, "이다", josa.WithToleranceStyle(style)))
}

func displayPhoneme(p rune) string {
	if p == 0 {
		return "Ø (null)"
	}
	return string(p)
}

func displayMorph(m string) string {
	if m == "" {
		return "Ø (null)"
	}
	return m
}
