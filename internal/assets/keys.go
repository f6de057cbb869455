package assets

// Key names an asset in the catalog.
type Key string

const (
	OrbNeutral         Key = "orb_neutral"
	OrbGreen           Key = "orb_green"
	OrbRed             Key = "orb_red"
	LeftArrowsGreen    Key = "left_arrows_green"
	LeftArrowsRed      Key = "left_arrows_red"
	RightArrowsGreen   Key = "right_arrows_green"
	RightArrowsRed     Key = "right_arrows_red"
	GlowingLeftArrows  Key = "glowing_left_arrows"
	GlowingRightArrows Key = "glowing_right_arrows"
)

// RequiredKeys are the assets the slider draws. A catalog missing any of
// them fails to load.
func RequiredKeys() []Key {
	return []Key{
		OrbNeutral, OrbGreen, OrbRed,
		LeftArrowsGreen, LeftArrowsRed,
		RightArrowsGreen, RightArrowsRed,
		GlowingLeftArrows, GlowingRightArrows,
	}
}
