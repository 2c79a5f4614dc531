package chess

import "testing"

func TestBoardSetGetClear(t *testing.T) {
	b := NewBoard()

	if got := b.Get('e', '4'); got != Empty {
		t.Fatalf("fresh board e4 = %v, want Empty", got)
	}

	b.Set('e', '4', W(Knight))
	if got := b.Get('e', '4'); got != W(Knight) {
		t.Errorf("after Set, e4 = %v, want white knight", got)
	}

	b.Clear('e', '4')
	if got := b.Get('e', '4'); got != Empty {
		t.Errorf("after Clear, e4 = %v, want Empty", got)
	}
}

func TestBoardGetOffBoard(t *testing.T) {
	b := NewBoard()
	if got := b.Get('z', '9'); got != Off {
		t.Errorf("Get(z, 9) = %v, want Off", got)
	}
	if got := b.Get('a'-1, '1'); got != Off {
		t.Errorf("Get off the left edge = %v, want Off", got)
	}
}

func TestKingTracking(t *testing.T) {
	b := NewBoard()

	if _, _, ok := b.KingSquare(White); ok {
		t.Fatal("empty board should have no white king")
	}

	b.Set('e', '1', W(King))
	col, rank, ok := b.KingSquare(White)
	if !ok || col != 'e' || rank != '1' {
		t.Errorf("KingSquare(White) = %c%c, %v; want e1, true", col, rank, ok)
	}

	// Moving the king updates the tracked square.
	b.Clear('e', '1')
	b.Set('d', '2', W(King))
	col, rank, ok = b.KingSquare(White)
	if !ok || col != 'd' || rank != '2' {
		t.Errorf("after move, KingSquare(White) = %c%c, %v; want d2, true", col, rank, ok)
	}

	b.Set('g', '8', B(King))
	col, rank, ok = b.KingSquare(Black)
	if !ok || col != 'g' || rank != '8' {
		t.Errorf("KingSquare(Black) = %c%c, %v; want g8, true", col, rank, ok)
	}
}

func TestBoardCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	b.Set('e', '1', W(King))
	b.Set('d', '5', B(Pawn))
	b.ToMove = Black

	c := b.Copy()
	c.Set('d', '5', W(Queen))
	c.ToMove = White

	if got := b.Get('d', '5'); got != B(Pawn) {
		t.Errorf("original d5 = %v after mutating copy, want black pawn", got)
	}
	if b.ToMove != Black {
		t.Error("original ToMove changed after mutating copy")
	}
	if got := c.Get('e', '1'); got != W(King) {
		t.Errorf("copy e1 = %v, want white king", got)
	}
}

func TestCopyInto(t *testing.T) {
	src := NewBoard()
	src.Set('a', '1', W(Rook))
	src.Set('h', '8', B(King))

	dst := NewBoard()
	dst.Set('e', '4', W(Queen)) // stale content must be overwritten
	src.CopyInto(dst)

	if got := dst.Get('a', '1'); got != W(Rook) {
		t.Errorf("dst a1 = %v, want white rook", got)
	}
	if got := dst.Get('e', '4'); got != Empty {
		t.Errorf("dst e4 = %v, want Empty", got)
	}
	if _, _, ok := dst.KingSquare(Black); !ok {
		t.Error("dst should track the copied black king")
	}
}

func TestFind(t *testing.T) {
	b := NewBoard()
	b.Set('a', '1', W(Rook))
	b.Set('h', '1', W(Rook))
	b.Set('a', '8', B(Rook))

	squares := b.Find(W(Rook))
	if len(squares) != 2 {
		t.Fatalf("Find(white rook) returned %d squares, want 2", len(squares))
	}
	for _, sq := range squares {
		if b.Get(sq.Col, sq.Rank) != W(Rook) {
			t.Errorf("Find returned %s which does not hold a white rook", sq.Name())
		}
	}
}
