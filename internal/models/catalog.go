package models

// Canned checklists offered when filling in a daily reflection. The UI layer
// presents them as pick-lists; free-form entries are equally valid.

// CommonMistakes returns the stock list of day-trading mistakes.
func CommonMistakes() []string {
	return []string{
		"Revenge trading after a loss",
		"Not following stop-loss rules",
		"Overtrading/taking too many positions",
		"FOMO (Fear of Missing Out) trades",
		"Not sticking to position size limits",
		"Trading against the trend",
		"Holding losing positions too long",
		"Taking profits too early",
		"Not waiting for proper setup",
		"Emotional decision making",
		"Trading without a plan",
		"Ignoring risk management",
		"Chasing after breakouts",
		"Not respecting support/resistance levels",
		"Trading in low volume conditions",
		"Adding to losing positions",
		"Not keeping proper records",
		"Trading when distracted/tired",
		"Ignoring market conditions",
		"Overconfidence after wins",
	}
}

// TradingRules returns the stock list of trading rules.
func TradingRules() []string {
	return []string{
		"Never risk more than 1% per trade",
		"Always use stop-loss orders",
		"Follow the 2:1 risk-reward ratio",
		"Never trade against the main trend",
		"Wait for confirmation before entering",
		"Only trade high-volume stocks",
		"Set position size before entering",
		"Never add to losing positions",
		"Take partial profits at targets",
		"Review trades at end of day",
		"Never trade on emotions",
		"Respect support and resistance levels",
		"Only trade during market hours",
		"Never risk more than you can afford",
		"Keep detailed trading journal",
		"Exit immediately when setup fails",
		"Never trade when distracted",
		"Always have an exit plan",
		"Don't trade the first 30 minutes",
		"Stick to your trading plan",
	}
}

// GoodPractices returns the stock list of good trading practices.
func GoodPractices() []string {
	return []string{
		"Followed my trading plan completely",
		"Used proper position sizing",
		"Set stop-loss before entering",
		"Waited for proper setup confirmation",
		"Took profits at predetermined levels",
		"Kept emotions in check",
		"Reviewed all trades objectively",
		"Maintained proper risk-reward ratio",
		"Only traded high-probability setups",
		"Avoided overtrading",
		"Respected market conditions",
		"Used proper entry timing",
		"Followed money management rules",
		"Stayed disciplined throughout day",
		"Took breaks when needed",
		"Analyzed market before trading",
		"Maintained trading journal",
		"Cut losses quickly",
		"Let winners run appropriately",
		"Followed pre-market preparation",
	}
}
