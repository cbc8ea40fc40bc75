package pregex

// Ready-made single-character tokens. Using these instead of hand-written
// strings keeps escaping mistakes out of composed patterns.

// Backslash matches a single backslash character.
func Backslash() *Pattern { return Raw(`\\`) }

// Newline matches a single newline character.
func Newline() *Pattern { return Raw("\n") }

// CarriageReturn matches a single carriage return character.
func CarriageReturn() *Pattern { return Raw("\r") }

// Tab matches a single tab character.
func Tab() *Pattern { return Raw("\t") }

// VerticalTab matches a single vertical tab character.
func VerticalTab() *Pattern { return Raw("\v") }

// FormFeed matches a single form feed character.
func FormFeed() *Pattern { return Raw("\f") }

// Space matches a single space character.
func Space() *Pattern { return Raw(" ") }

// Dollar matches the dollar sign.
func Dollar() *Pattern { return Raw(`\$`) }

// Copyright matches the copyright symbol.
func Copyright() *Pattern { return Raw("©") }

// Registered matches the registered trademark symbol.
func Registered() *Pattern { return Raw("®") }

// Trademark matches the unregistered trademark symbol.
func Trademark() *Pattern { return Raw("™") }

// Euro matches the euro sign.
func Euro() *Pattern { return Raw("€") }

// Pound matches the pound sign.
func Pound() *Pattern { return Raw("£") }

// Yen matches the yen sign.
func Yen() *Pattern { return Raw("¥") }

// Infinity matches the infinity symbol.
func Infinity() *Pattern { return Raw("∞") }

// Bullet matches the bullet symbol.
func Bullet() *Pattern { return Raw("•") }
