package matcher

// Tier is a named priority tier. Higher tiers are consulted first.
type Tier int

const (
	// TierSynthesized holds per-dependency groups generated by the
	// aggressive strategy
	TierSynthesized Tier = 50

	// TierMediumPreset holds medium-library preset groups
	TierMediumPreset Tier = 70

	// TierLargePreset holds large-library preset groups
	TierLargePreset Tier = 80

	// TierHint holds groups activated by framework hints
	TierHint Tier = 90

	// TierCustom holds user-configured groups, always consulted first
	TierCustom Tier = 100
)

// String returns the tier's label
func (t Tier) String() string {
	switch t {
	case TierCustom:
		return "custom"
	case TierHint:
		return "hint"
	case TierLargePreset:
		return "large-preset"
	case TierMediumPreset:
		return "medium-preset"
	case TierSynthesized:
		return "synthesized"
	default:
		return "unknown"
	}
}
