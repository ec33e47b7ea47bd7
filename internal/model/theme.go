package model

// Theme is one of the 34 recognized strength themes.
type Theme string

// The vocabulary, grouped by talent domain. The grouping is documentation
// only; nothing computes over it.
const (
	// Strategic thinking
	ThemeAnalytical   Theme = "Analytical"
	ThemeContext      Theme = "Context"
	ThemeFuturistic   Theme = "Futuristic"
	ThemeIdeation     Theme = "Ideation"
	ThemeInput        Theme = "Input"
	ThemeIntellection Theme = "Intellection"
	ThemeLearner      Theme = "Learner"
	ThemeStrategic    Theme = "Strategic"

	// Relationship building
	ThemeAdaptability      Theme = "Adaptability"
	ThemeConnectedness     Theme = "Connectedness"
	ThemeDeveloper         Theme = "Developer"
	ThemeEmpathy           Theme = "Empathy"
	ThemeHarmony           Theme = "Harmony"
	ThemeIncluder          Theme = "Includer"
	ThemeIndividualization Theme = "Individualization"
	ThemePositivity        Theme = "Positivity"
	ThemeRelator           Theme = "Relator"

	// Influencing
	ThemeActivator     Theme = "Activator"
	ThemeCommand       Theme = "Command"
	ThemeCommunication Theme = "Communication"
	ThemeCompetition   Theme = "Competition"
	ThemeMaximizer     Theme = "Maximizer"
	ThemeSelfAssurance Theme = "Self-Assurance"
	ThemeSignificance  Theme = "Significance"
	ThemeWoo           Theme = "Woo"

	// Executing
	ThemeAchiever       Theme = "Achiever"
	ThemeArranger       Theme = "Arranger"
	ThemeBelief         Theme = "Belief"
	ThemeConsistency    Theme = "Consistency"
	ThemeDeliberative   Theme = "Deliberative"
	ThemeDiscipline     Theme = "Discipline"
	ThemeFocus          Theme = "Focus"
	ThemeResponsibility Theme = "Responsibility"
	ThemeRestorative    Theme = "Restorative"
)

// AllThemes lists every recognized theme in presentation order. Reports and
// histograms iterate the vocabulary in this order.
var AllThemes = []Theme{
	ThemeAnalytical,
	ThemeContext,
	ThemeFuturistic,
	ThemeIdeation,
	ThemeInput,
	ThemeIntellection,
	ThemeLearner,
	ThemeStrategic,
	ThemeAdaptability,
	ThemeConnectedness,
	ThemeDeveloper,
	ThemeEmpathy,
	ThemeHarmony,
	ThemeIncluder,
	ThemeIndividualization,
	ThemePositivity,
	ThemeRelator,
	ThemeActivator,
	ThemeCommand,
	ThemeCommunication,
	ThemeCompetition,
	ThemeMaximizer,
	ThemeSelfAssurance,
	ThemeSignificance,
	ThemeWoo,
	ThemeAchiever,
	ThemeArranger,
	ThemeBelief,
	ThemeConsistency,
	ThemeDeliberative,
	ThemeDiscipline,
	ThemeFocus,
	ThemeResponsibility,
	ThemeRestorative,
}

var themeRank = buildThemeRank()

func buildThemeRank() map[Theme]int {
	rank := make(map[Theme]int, len(AllThemes))
	for i, theme := range AllThemes {
		rank[theme] = i
	}
	return rank
}

// IsTheme reports whether label is part of the vocabulary.
func IsTheme(label string) bool {
	_, ok := themeRank[Theme(label)]
	return ok
}

// ThemeRank returns the vocabulary position of a theme. Labels outside the
// vocabulary get len(AllThemes) so they sort after known themes.
func ThemeRank(theme Theme) int {
	if i, ok := themeRank[theme]; ok {
		return i
	}
	return len(AllThemes)
}
