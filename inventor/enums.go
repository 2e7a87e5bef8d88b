package inventor

// DocumentTypeEnum values from the host API.
const (
	kPartDocumentObject     = 12290
	kAssemblyDocumentObject = 12291
)

// UnitsTypeEnum values from the host API.
const (
	kMillimeterLengthUnits = 11269
	kInchLengthUnits       = 11272
	kRadianAngleUnits      = 11279
	kDegreeAngleUnits      = 11280
)
