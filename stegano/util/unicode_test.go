package util
import (
	"testing"
)

func TestIsInvisible( t *testing.T ) {
	invisible := []rune{ '\u200e', '\u200f', '\u061c', '\u200b', '\u200c', '\u200d', '\u2060', '\ufeff' }
	for _, r := range invisible {
		if IsInvisible( r ) == false {
			t.Errorf("%U should count as invisible", r)
		}
	}

	visible := []rune{ 'a', 'Я', '😀', ' ', '\t', '\n', '\u0301' }
	for _, r := range visible {
		if IsInvisible( r ) {
			t.Errorf("%U should not count as invisible", r)
		}
	}
}

func TestFirstInvisible( t *testing.T ) {
	pos, r, found := FirstInvisible( "ab\u200ec" )
	if found == false || pos != 2 || r != '\u200e' {
		t.Errorf("FirstInvisible = (%d, %U, %v)", pos, r, found)
	}

	// positions are rune positions, not byte offsets.
	pos, _, found = FirstInvisible( "😀😀\u200d" )
	if found == false || pos != 2 {
		t.Errorf("FirstInvisible after astral runes = (%d, %v)", pos, found)
	}

	if _, _, found = FirstInvisible( "plain text" ); found {
		t.Errorf("FirstInvisible found something in plain text")
	}
}

func TestNormalizationStable( t *testing.T ) {
	if NormalizationStable( "café" ) == false {
		t.Errorf("a precomposed string should be stable")
	}
	if NormalizationStable( "cafe\u0301" ) {
		t.Errorf("a decomposed string is rewritten by NFC and is not stable")
	}
	if NormalizationStable( "plain ascii" ) == false {
		t.Errorf("ascii should be stable")
	}
}
