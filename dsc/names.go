package dsc

// Atend is the placeholder value declaring that a directive's real value
// appears later in the document trailer.
const Atend = "(atend)"

// Well-known DSC comment names.
const (
	NameEOF                       = "EOF"
	NamePages                     = "Pages"
	NamePage                      = "Page"
	NameBoundingBox               = "BoundingBox"
	NameHiResBoundingBox          = "HiResBoundingBox"
	NameLanguageLevel             = "LanguageLevel"
	NameTitle                     = "Title"
	NameCreator                   = "Creator"
	NameCreationDate              = "CreationDate"
	NameFor                       = "For"
	NameCopyright                 = "Copyright"
	NameOrientation               = "Orientation"
	NamePageOrder                 = "PageOrder"
	NameBeginDocument             = "BeginDocument"
	NameEndDocument               = "EndDocument"
	NameBeginProlog               = "BeginProlog"
	NameEndProlog                 = "EndProlog"
	NameBeginSetup                = "BeginSetup"
	NameEndSetup                  = "EndSetup"
	NameEndComments               = "EndComments"
	NameTrailer                   = "Trailer"
	NameDocumentNeededResources   = "DocumentNeededResources"
	NameDocumentSuppliedResources = "DocumentSuppliedResources"
	NameIncludeResource           = "IncludeResource"
)
