package quill

// FontSlot names one of the script-specific font slots of a FontSet.
// SlotDefault is a placeholder meaning the consuming application decides
// which font to use; it never holds a value of its own.
type FontSlot int

const (
	SlotDefault FontSlot = iota
	SlotASCII
	SlotHighANSI
	SlotEastAsian
	SlotComplexScript
	SlotASCIITheme
	SlotHighANSITheme
	SlotEastAsianTheme
	SlotComplexScriptTheme
)

var fontSlotTable = newWireTable(SlotDefault, map[FontSlot]string{
	SlotDefault:            "default",
	SlotASCII:              "ascii",
	SlotHighANSI:           "hAnsi",
	SlotEastAsian:          "eastAsia",
	SlotComplexScript:      "cs",
	SlotASCIITheme:         "asciiTheme",
	SlotHighANSITheme:      "hAnsiTheme",
	SlotEastAsianTheme:     "eastAsiaTheme",
	SlotComplexScriptTheme: "csTheme",
})

func (s FontSlot) String() string {
	return fontSlotTable.token(s)
}

// ParseFontSlot maps a wire token to its slot. Unknown tokens fall back
// to SlotDefault.
func ParseFontSlot(token string) FontSlot {
	return fontSlotTable.parse(token)
}

// FontSet holds per-script font names plus a hint naming which slot is
// authoritative. Empty slots are unset. The serialized form carries only
// the hint-selected slot.
type FontSet struct {
	ASCII              string
	HighANSI           string
	EastAsian          string
	ComplexScript      string
	ASCIITheme         string
	HighANSITheme      string
	EastAsianTheme     string
	ComplexScriptTheme string
	Hint               FontSlot
}

// NewFontSet builds a font set with the given name in the given slot and
// the hint pointing at that slot. SlotDefault cannot hold a name.
func NewFontSet(name string, slot FontSlot) (*FontSet, error) {
	f := &FontSet{}
	if err := f.Set(slot, name); err != nil {
		return nil, err
	}
	f.Hint = slot
	return f, nil
}

func (f *FontSet) slot(slot FontSlot) *string {
	switch slot {
	case SlotASCII:
		return &f.ASCII
	case SlotHighANSI:
		return &f.HighANSI
	case SlotEastAsian:
		return &f.EastAsian
	case SlotComplexScript:
		return &f.ComplexScript
	case SlotASCIITheme:
		return &f.ASCIITheme
	case SlotHighANSITheme:
		return &f.HighANSITheme
	case SlotEastAsianTheme:
		return &f.EastAsianTheme
	case SlotComplexScriptTheme:
		return &f.ComplexScriptTheme
	default:
		return nil
	}
}

// Set stores a font name in a slot. Assigning to SlotDefault fails with
// ErrDefaultHint.
func (f *FontSet) Set(slot FontSlot, name string) error {
	ref := f.slot(slot)
	if ref == nil {
		return ErrDefaultHint
	}
	*ref = name
	return nil
}

// Get returns the font name stored in a slot, or a property-not-set
// error when the slot is empty.
func (f *FontSet) Get(slot FontSlot) (string, error) {
	ref := f.slot(slot)
	if ref == nil {
		return "", ErrDefaultHint
	}
	if *ref == "" {
		return "", &PropertyNotSetError{Property: slot.String()}
	}
	return *ref, nil
}

// Resolve follows the hint into its slot and returns the font name
// found there. A SlotDefault hint cannot be resolved by the model, and a
// hint pointing at an empty slot is an error.
func (f *FontSet) Resolve() (string, error) {
	if f.Hint == SlotDefault {
		return "", ErrDefaultHint
	}
	ref := f.slot(f.Hint)
	if *ref == "" {
		return "", &HintUnsetError{Slot: f.Hint}
	}
	return *ref, nil
}

// populatedSlots lists the slots currently holding a font name, in slot
// order. The decoder uses this to infer a hint when the markup carries a
// single font attribute and no hint.
func (f *FontSet) populatedSlots() []FontSlot {
	var slots []FontSlot
	for s := SlotASCII; s <= SlotComplexScriptTheme; s++ {
		if *f.slot(s) != "" {
			slots = append(slots, s)
		}
	}
	return slots
}
