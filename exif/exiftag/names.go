package exiftag

var names = map[uint32]string{
	ImageWidth:                  "ImageWidth",
	ImageLength:                 "ImageLength",
	BitsPerSample:               "BitsPerSample",
	Compression:                 "Compression",
	PhotometricInterpretation:   "PhotometricInterpretation",
	ImageDescription:            "ImageDescription",
	Make:                        "Make",
	Model:                       "Model",
	StripOffsets:                "StripOffsets",
	Orientation:                 "Orientation",
	SamplesPerPixel:             "SamplesPerPixel",
	RowsPerStrip:                "RowsPerStrip",
	StripByteCounts:             "StripByteCounts",
	XResolution:                 "XResolution",
	YResolution:                 "YResolution",
	PlanarConfiguration:         "PlanarConfiguration",
	ResolutionUnit:              "ResolutionUnit",
	TransferFunction:            "TransferFunction",
	Software:                    "Software",
	DateTime:                    "DateTime",
	Artist:                      "Artist",
	HostComputer:                "HostComputer",
	WhitePoint:                  "WhitePoint",
	PrimaryChromaticities:       "PrimaryChromaticities",
	JPEGInterchangeFormat:       "JPEGInterchangeFormat",
	JPEGInterchangeFormatLength: "JPEGInterchangeFormatLength",
	YCbCrCoefficients:           "YCbCrCoefficients",
	YCbCrSubSampling:            "YCbCrSubSampling",
	YCbCrPositioning:            "YCbCrPositioning",
	ReferenceBlackWhite:         "ReferenceBlackWhite",
	Rating:                      "Rating",
	Copyright:                   "Copyright",
	ExifIFDPointer:              "ExifIFDPointer",
	GPSIFDPointer:               "GPSIFDPointer",
	ExposureTime:                "ExposureTime",
	FNumber:                     "FNumber",
	ExposureProgram:             "ExposureProgram",
	SpectralSensitivity:         "SpectralSensitivity",
	ISOSpeedRatings:             "ISOSpeedRatings",
	OECF:                        "OECF",
	SensitivityType:             "SensitivityType",
	ExifVersion:                 "ExifVersion",
	DateTimeOriginal:            "DateTimeOriginal",
	DateTimeDigitized:           "DateTimeDigitized",
	OffsetTime:                  "OffsetTime",
	OffsetTimeOriginal:          "OffsetTimeOriginal",
	OffsetTimeDigitized:         "OffsetTimeDigitized",
	ComponentsConfiguration:     "ComponentsConfiguration",
	CompressedBitsPerPixel:      "CompressedBitsPerPixel",
	ShutterSpeedValue:           "ShutterSpeedValue",
	ApertureValue:               "ApertureValue",
	BrightnessValue:             "BrightnessValue",
	ExposureBiasValue:           "ExposureBiasValue",
	MaxApertureValue:            "MaxApertureValue",
	SubjectDistance:             "SubjectDistance",
	MeteringMode:                "MeteringMode",
	LightSource:                 "LightSource",
	Flash:                       "Flash",
	FocalLength:                 "FocalLength",
	SubjectArea:                 "SubjectArea",
	MakerNote:                   "MakerNote",
	UserComment:                 "UserComment",
	SubSecTime:                  "SubSecTime",
	SubSecTimeOriginal:          "SubSecTimeOriginal",
	SubSecTimeDigitized:         "SubSecTimeDigitized",
	FlashpixVersion:             "FlashpixVersion",
	ColorSpace:                  "ColorSpace",
	PixelXDimension:             "PixelXDimension",
	PixelYDimension:             "PixelYDimension",
	RelatedSoundFile:            "RelatedSoundFile",
	InteropIFDPointer:           "InteropIFDPointer",
	FlashEnergy:                 "FlashEnergy",
	FocalPlaneXResolution:       "FocalPlaneXResolution",
	FocalPlaneYResolution:       "FocalPlaneYResolution",
	FocalPlaneResolutionUnit:    "FocalPlaneResolutionUnit",
	SubjectLocation:             "SubjectLocation",
	ExposureIndex:               "ExposureIndex",
	SensingMethod:               "SensingMethod",
	FileSource:                  "FileSource",
	SceneType:                   "SceneType",
	CFAPattern:                  "CFAPattern",
	CustomRendered:              "CustomRendered",
	ExposureMode:                "ExposureMode",
	WhiteBalance:                "WhiteBalance",
	DigitalZoomRatio:            "DigitalZoomRatio",
	FocalLengthIn35mmFilm:       "FocalLengthIn35mmFilm",
	SceneCaptureType:            "SceneCaptureType",
	GainControl:                 "GainControl",
	Contrast:                    "Contrast",
	Saturation:                  "Saturation",
	Sharpness:                   "Sharpness",
	SubjectDistanceRange:        "SubjectDistanceRange",
	ImageUniqueID:               "ImageUniqueID",
	CameraOwnerName:             "CameraOwnerName",
	BodySerialNumber:            "BodySerialNumber",
	LensSpecification:           "LensSpecification",
	LensMake:                    "LensMake",
	LensModel:                   "LensModel",
	LensSerialNumber:            "LensSerialNumber",
	GPSVersionID:                "GPSVersionID",
	GPSLatitudeRef:              "GPSLatitudeRef",
	GPSLatitude:                 "GPSLatitude",
	GPSLongitudeRef:             "GPSLongitudeRef",
	GPSLongitude:                "GPSLongitude",
	GPSAltitudeRef:              "GPSAltitudeRef",
	GPSAltitude:                 "GPSAltitude",
	GPSTimeStamp:                "GPSTimeStamp",
	GPSSatellites:               "GPSSatellites",
	GPSStatus:                   "GPSStatus",
	GPSMeasureMode:              "GPSMeasureMode",
	GPSDOP:                      "GPSDOP",
	GPSSpeedRef:                 "GPSSpeedRef",
	GPSSpeed:                    "GPSSpeed",
	GPSTrackRef:                 "GPSTrackRef",
	GPSTrack:                    "GPSTrack",
	GPSImgDirectionRef:          "GPSImgDirectionRef",
	GPSImgDirection:             "GPSImgDirection",
	GPSMapDatum:                 "GPSMapDatum",
	GPSDestLatitudeRef:          "GPSDestLatitudeRef",
	GPSDestLatitude:             "GPSDestLatitude",
	GPSDestLongitudeRef:         "GPSDestLongitudeRef",
	GPSDestLongitude:            "GPSDestLongitude",
	GPSDestBearingRef:           "GPSDestBearingRef",
	GPSDestBearing:              "GPSDestBearing",
	GPSDestDistanceRef:          "GPSDestDistanceRef",
	GPSDestDistance:             "GPSDestDistance",
	GPSProcessingMethod:         "GPSProcessingMethod",
	GPSAreaInformation:          "GPSAreaInformation",
	GPSDateStamp:                "GPSDateStamp",
	GPSDifferential:             "GPSDifferential",
	GPSHPositioningError:        "GPSHPositioningError",
	InteroperabilityIndex:       "InteroperabilityIndex",
	InteroperabilityVersion:     "InteroperabilityVersion",
	RelatedImageFileFormat:      "RelatedImageFileFormat",
	RelatedImageWidth:           "RelatedImageWidth",
	RelatedImageLength:          "RelatedImageLength",
}
