package toolbar

// AddressModel describes the address toolbar for one window.
//
// NavigationButtons holds inline navigation controls (empty on phones, where
// navigation lives in the navigation toolbar). PageButtons holds actions on
// the current page, BrowserButtons actions on the browser itself. URL is
// empty when no page is loaded.
type AddressModel struct {
	NavigationButtons []Button `json:"navigationButtons,omitempty"`
	PageButtons       []Button `json:"pageButtons"`
	BrowserButtons    []Button `json:"browserButtons"`
	TopBorder         bool     `json:"topBorder"`
	BottomBorder      bool     `json:"bottomBorder"`
	URL               string   `json:"url,omitempty"`
}

// NavigationModel describes the bottom navigation toolbar for one window.
type NavigationModel struct {
	Buttons []Button `json:"buttons"`
	Border  bool     `json:"border"`
}
