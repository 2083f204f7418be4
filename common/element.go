// Package common holds the chemical vocabulary shared by every stage
// of the resonance perception pipeline: elements, bond orders,
// hybridization states and conjugation roles. None of it depends on
// the perception machinery, so external collaborators building a
// Graph (see the root package) only ever need to import this package.
package common

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Element identifies one of the 118 chemical elements by atomic
// number. The zero value is not a valid element; use ElementByNumber
// or ParseElement to obtain one.
type Element struct {
	Number uint8  // Atomic number, 1..118.
	Symbol string // IUPAC symbol, e.g. "Na".
	Name   string // English name, e.g. "Sodium".

	// ValenceElectrons is the main-group valence electron count, defined
	// only for groups 1-2 and 13-18. A value of -1 means undefined
	// (transition metals, lanthanides, actinides): StatePerceiver gives
	// such atoms 0 lone pairs, and none of them is an element that
	// AromaticityPerceiver admits into an aromatic ring system.
	ValenceElectrons int8
}

// HasValenceElectrons answers whether this element's main-group
// valence electron count is defined.
func (e Element) HasValenceElectrons() bool {
	return e.ValenceElectrons >= 0
}

// ElementParseError is answered when ParseElement is given a string
// that names neither a known atomic number nor a known IUPAC symbol.
type ElementParseError struct {
	Input string
}

func (e *ElementParseError) Error() string {
	return "common: cannot parse element from " + strconv.Quote(e.Input)
}

// ElementByNumber answers the element with the given atomic number and
// true, or the zero Element and false if number is outside 1..118.
func ElementByNumber(number uint8) (Element, bool) {
	if number == 0 || int(number) > len(periodicTable) {
		return Element{}, false
	}
	return periodicTable[number-1], true
}

// ParseElement parses an element from either its atomic number as a
// decimal string, or its IUPAC symbol (case-insensitive, leading and
// trailing whitespace trimmed). This is the one place the core
// touches raw strings, per spec.
func ParseElement(s string) (Element, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Element{}, &ElementParseError{Input: s}
	}

	if n, err := strconv.Atoi(trimmed); err == nil {
		if n < 1 || n > len(periodicTable) {
			return Element{}, &ElementParseError{Input: s}
		}
		return periodicTable[n-1], nil
	}

	key := strings.ToLower(trimmed)
	el, ok := symbolIndex[key]
	if !ok {
		return Element{}, &ElementParseError{Input: s}
	}
	return el, nil
}

// mustElement is a package-init helper; it panics on a malformed table
// entry, which would be a programming error in this file, not a
// runtime condition.
func mustElement(number uint8, symbol, name string, valenceElectrons int8) Element {
	if int(number) < 1 || int(number) > 118 {
		panic(errors.Errorf("common: invalid atomic number %d for %s", number, symbol))
	}
	return Element{Number: number, Symbol: symbol, Name: name, ValenceElectrons: valenceElectrons}
}

// symbolIndex is built once at init from periodicTable, keyed by
// lower-cased symbol.
var symbolIndex map[string]Element

func init() {
	symbolIndex = make(map[string]Element, len(periodicTable))
	for _, el := range periodicTable {
		symbolIndex[strings.ToLower(el.Symbol)] = el
	}
}

// periodicTable holds all 118 elements, ordered by atomic number.
// ValenceElectrons is populated for groups 1-2 and 13-18 only; -1
// elsewhere (transition metals, lanthanides, actinides), per spec
// §3/§Glossary ("Valence electrons... defined only for groups 1-2 and
// 13-18").
var periodicTable = [118]Element{
	mustElement(1, "H", "Hydrogen", 1),
	mustElement(2, "He", "Helium", 2),
	mustElement(3, "Li", "Lithium", 1),
	mustElement(4, "Be", "Beryllium", 2),
	mustElement(5, "B", "Boron", 3),
	mustElement(6, "C", "Carbon", 4),
	mustElement(7, "N", "Nitrogen", 5),
	mustElement(8, "O", "Oxygen", 6),
	mustElement(9, "F", "Fluorine", 7),
	mustElement(10, "Ne", "Neon", 8),
	mustElement(11, "Na", "Sodium", 1),
	mustElement(12, "Mg", "Magnesium", 2),
	mustElement(13, "Al", "Aluminium", 3),
	mustElement(14, "Si", "Silicon", 4),
	mustElement(15, "P", "Phosphorus", 5),
	mustElement(16, "S", "Sulfur", 6),
	mustElement(17, "Cl", "Chlorine", 7),
	mustElement(18, "Ar", "Argon", 8),
	mustElement(19, "K", "Potassium", 1),
	mustElement(20, "Ca", "Calcium", 2),
	mustElement(21, "Sc", "Scandium", -1),
	mustElement(22, "Ti", "Titanium", -1),
	mustElement(23, "V", "Vanadium", -1),
	mustElement(24, "Cr", "Chromium", -1),
	mustElement(25, "Mn", "Manganese", -1),
	mustElement(26, "Fe", "Iron", -1),
	mustElement(27, "Co", "Cobalt", -1),
	mustElement(28, "Ni", "Nickel", -1),
	mustElement(29, "Cu", "Copper", -1),
	mustElement(30, "Zn", "Zinc", -1),
	mustElement(31, "Ga", "Gallium", 3),
	mustElement(32, "Ge", "Germanium", 4),
	mustElement(33, "As", "Arsenic", 5),
	mustElement(34, "Se", "Selenium", 6),
	mustElement(35, "Br", "Bromine", 7),
	mustElement(36, "Kr", "Krypton", 8),
	mustElement(37, "Rb", "Rubidium", 1),
	mustElement(38, "Sr", "Strontium", 2),
	mustElement(39, "Y", "Yttrium", -1),
	mustElement(40, "Zr", "Zirconium", -1),
	mustElement(41, "Nb", "Niobium", -1),
	mustElement(42, "Mo", "Molybdenum", -1),
	mustElement(43, "Tc", "Technetium", -1),
	mustElement(44, "Ru", "Ruthenium", -1),
	mustElement(45, "Rh", "Rhodium", -1),
	mustElement(46, "Pd", "Palladium", -1),
	mustElement(47, "Ag", "Silver", -1),
	mustElement(48, "Cd", "Cadmium", -1),
	mustElement(49, "In", "Indium", 3),
	mustElement(50, "Sn", "Tin", 4),
	mustElement(51, "Sb", "Antimony", 5),
	mustElement(52, "Te", "Tellurium", 6),
	mustElement(53, "I", "Iodine", 7),
	mustElement(54, "Xe", "Xenon", 8),
	mustElement(55, "Cs", "Caesium", 1),
	mustElement(56, "Ba", "Barium", 2),
	mustElement(57, "La", "Lanthanum", -1),
	mustElement(58, "Ce", "Cerium", -1),
	mustElement(59, "Pr", "Praseodymium", -1),
	mustElement(60, "Nd", "Neodymium", -1),
	mustElement(61, "Pm", "Promethium", -1),
	mustElement(62, "Sm", "Samarium", -1),
	mustElement(63, "Eu", "Europium", -1),
	mustElement(64, "Gd", "Gadolinium", -1),
	mustElement(65, "Tb", "Terbium", -1),
	mustElement(66, "Dy", "Dysprosium", -1),
	mustElement(67, "Ho", "Holmium", -1),
	mustElement(68, "Er", "Erbium", -1),
	mustElement(69, "Tm", "Thulium", -1),
	mustElement(70, "Yb", "Ytterbium", -1),
	mustElement(71, "Lu", "Lutetium", -1),
	mustElement(72, "Hf", "Hafnium", -1),
	mustElement(73, "Ta", "Tantalum", -1),
	mustElement(74, "W", "Tungsten", -1),
	mustElement(75, "Re", "Rhenium", -1),
	mustElement(76, "Os", "Osmium", -1),
	mustElement(77, "Ir", "Iridium", -1),
	mustElement(78, "Pt", "Platinum", -1),
	mustElement(79, "Au", "Gold", -1),
	mustElement(80, "Hg", "Mercury", -1),
	mustElement(81, "Tl", "Thallium", 3),
	mustElement(82, "Pb", "Lead", 4),
	mustElement(83, "Bi", "Bismuth", 5),
	mustElement(84, "Po", "Polonium", 6),
	mustElement(85, "At", "Astatine", 7),
	mustElement(86, "Rn", "Radon", 8),
	mustElement(87, "Fr", "Francium", 1),
	mustElement(88, "Ra", "Radium", 2),
	mustElement(89, "Ac", "Actinium", -1),
	mustElement(90, "Th", "Thorium", -1),
	mustElement(91, "Pa", "Protactinium", -1),
	mustElement(92, "U", "Uranium", -1),
	mustElement(93, "Np", "Neptunium", -1),
	mustElement(94, "Pu", "Plutonium", -1),
	mustElement(95, "Am", "Americium", -1),
	mustElement(96, "Cm", "Curium", -1),
	mustElement(97, "Bk", "Berkelium", -1),
	mustElement(98, "Cf", "Californium", -1),
	mustElement(99, "Es", "Einsteinium", -1),
	mustElement(100, "Fm", "Fermium", -1),
	mustElement(101, "Md", "Mendelevium", -1),
	mustElement(102, "No", "Nobelium", -1),
	mustElement(103, "Lr", "Lawrencium", -1),
	mustElement(104, "Rf", "Rutherfordium", -1),
	mustElement(105, "Db", "Dubnium", -1),
	mustElement(106, "Sg", "Seaborgium", -1),
	mustElement(107, "Bh", "Bohrium", -1),
	mustElement(108, "Hs", "Hassium", -1),
	mustElement(109, "Mt", "Meitnerium", -1),
	mustElement(110, "Ds", "Darmstadtium", -1),
	mustElement(111, "Rg", "Roentgenium", -1),
	mustElement(112, "Cn", "Copernicium", -1),
	mustElement(113, "Nh", "Nihonium", 3),
	mustElement(114, "Fl", "Flerovium", 4),
	mustElement(115, "Mc", "Moscovium", 5),
	mustElement(116, "Lv", "Livermorium", 6),
	mustElement(117, "Ts", "Tennessine", 7),
	mustElement(118, "Og", "Oganesson", 8),
}
