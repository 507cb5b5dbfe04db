package layout

// ArchLogo returns the rows of the Arch Linux logo. Each call returns a fresh slice.
func ArchLogo() []string {
	return []string{
		`      /#\`,
		`     /###\`,
		`    /p^###\`,
		`   /##P^q##\`,
		`  /##(   )##\`,
		` /###P   q#,^\`,
		`/P^         ^q\`,
	}
}
