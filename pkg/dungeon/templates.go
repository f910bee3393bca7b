package dungeon

// Виды врагов. Поведение (ИИ) задается снаружи, здесь только имена.
const (
	KindBatBlue       = "bat_blue"
	KindBatRed        = "bat_red"
	KindSlimeBlue     = "slime_blue"
	KindGhost         = "ghost"
	KindSkeletonWhite = "skeleton_white"
)

// enemyGlyphs - буквы ASCII-раскладки, означающие пол с врагом.
var enemyGlyphs = map[rune]string{
	'b': KindBatBlue,
	'B': KindBatRed,
	's': KindSlimeBlue,
	'g': KindGhost,
	'k': KindSkeletonWhite,
}

// kindGlyphs - обратная таблица для отладочного вывода.
var kindGlyphs = func() map[string]rune {
	out := make(map[string]rune, len(enemyGlyphs))
	for glyph, kind := range enemyGlyphs {
		out[kind] = glyph
	}
	return out
}()

// GlyphForKind возвращает букву врага для ASCII-вывода ('?' для неизвестных).
func GlyphForKind(kind string) rune {
	if g, ok := kindGlyphs[kind]; ok {
		return g
	}
	return '?'
}
