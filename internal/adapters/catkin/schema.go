package catkin

import "encoding/xml"

// manifest is the package.xml document, formats 1 to 3.
type manifest struct {
	XMLName          xml.Name      `xml:"package"`
	Format           int           `xml:"format,attr"`
	Name             string        `xml:"name"`
	Version          string        `xml:"version"`
	Description      string        `xml:"description"`
	Maintainers      []personEntry `xml:"maintainer"`
	Licenses         []string      `xml:"license"`
	URLs             []urlEntry    `xml:"url"`
	BuildDepends     []string      `xml:"build_depend"`
	BuildtoolDepends []string      `xml:"buildtool_depend"`
	RunDepends       []string      `xml:"run_depend"`
	ExecDepends      []string      `xml:"exec_depend"`
	Depends          []string      `xml:"depend"`
}

type personEntry struct {
	Name  string `xml:",chardata"`
	Email string `xml:"email,attr"`
}

type urlEntry struct {
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}
