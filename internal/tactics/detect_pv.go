package tactics

// detectPerpetualCheck fires when a supplied principal variation shows the
// mover checking on most of its plies with a repeating move pair: the move
// heads for a draw by perpetual.
func (e *Explainer) detectPerpetualCheck() *Finding {
	for _, pv := range e.PVs {
		if len(pv.Moves) == 0 {
			continue
		}
		// The line must start with the analysed move.
		if first := pv.Moves[0]; first.Code != e.Move.Text {
			continue
		}
		if !pv.IsPerpetualCheck() {
			continue
		}
		return &Finding{Description: "perpetual check", Importance: 5, Category: CategoryPerpetual}
	}
	return nil
}
