// Package exiftag enumerates known Exif tag identifiers.
//
// Tag constants combine a directory namespace in the upper 16 bits
// with the 16-bit tag code used in the encoded Image File Directory,
// so that the same code can name different fields in different directories.
package exiftag

import "fmt"

// Directory namespaces.
const (
	Tiff    = 0x00000 // IFD0 and IFD1
	Exif    = 0x10000
	GPS     = 0x20000
	Interop = 0x30000

	nsMask = 0xffff0000
)

// Namespace returns the directory namespace of tag t.
func Namespace(t uint32) uint32 {
	return t & nsMask
}

// Code returns the 16-bit code of t as stored in an IFD entry.
func Code(t uint32) uint16 {
	return uint16(t)
}

// IFD0/IFD1 tags
const (
	ImageWidth                = Tiff | 0x0100
	ImageLength               = Tiff | 0x0101
	BitsPerSample             = Tiff | 0x0102
	Compression               = Tiff | 0x0103
	PhotometricInterpretation = Tiff | 0x0106
	ImageDescription          = Tiff | 0x010E
	Make                      = Tiff | 0x010F
	Model                     = Tiff | 0x0110
	StripOffsets              = Tiff | 0x0111
	Orientation               = Tiff | 0x0112
	SamplesPerPixel           = Tiff | 0x0115
	RowsPerStrip              = Tiff | 0x0116
	StripByteCounts           = Tiff | 0x0117
	XResolution               = Tiff | 0x011A
	YResolution               = Tiff | 0x011B
	PlanarConfiguration       = Tiff | 0x011C
	ResolutionUnit            = Tiff | 0x0128
	TransferFunction          = Tiff | 0x012D
	Software                  = Tiff | 0x0131
	DateTime                  = Tiff | 0x0132
	Artist                    = Tiff | 0x013B
	HostComputer              = Tiff | 0x013C
	WhitePoint                = Tiff | 0x013E
	PrimaryChromaticities     = Tiff | 0x013F

	JPEGInterchangeFormat       = Tiff | 0x0201
	JPEGInterchangeFormatLength = Tiff | 0x0202

	YCbCrCoefficients   = Tiff | 0x0211
	YCbCrSubSampling    = Tiff | 0x0212
	YCbCrPositioning    = Tiff | 0x0213
	ReferenceBlackWhite = Tiff | 0x0214
	Rating              = Tiff | 0x4746
	Copyright           = Tiff | 0x8298

	ExifIFDPointer = Tiff | 0x8769
	GPSIFDPointer  = Tiff | 0x8825
)

// Exif sub-IFD tags
const (
	ExposureTime             = Exif | 0x829A
	FNumber                  = Exif | 0x829D
	ExposureProgram          = Exif | 0x8822
	SpectralSensitivity      = Exif | 0x8824
	ISOSpeedRatings          = Exif | 0x8827
	OECF                     = Exif | 0x8828
	SensitivityType          = Exif | 0x8830
	ExifVersion              = Exif | 0x9000
	DateTimeOriginal         = Exif | 0x9003
	DateTimeDigitized        = Exif | 0x9004
	OffsetTime               = Exif | 0x9010
	OffsetTimeOriginal       = Exif | 0x9011
	OffsetTimeDigitized      = Exif | 0x9012
	ComponentsConfiguration  = Exif | 0x9101
	CompressedBitsPerPixel   = Exif | 0x9102
	ShutterSpeedValue        = Exif | 0x9201
	ApertureValue            = Exif | 0x9202
	BrightnessValue          = Exif | 0x9203
	ExposureBiasValue        = Exif | 0x9204
	MaxApertureValue         = Exif | 0x9205
	SubjectDistance          = Exif | 0x9206
	MeteringMode             = Exif | 0x9207
	LightSource              = Exif | 0x9208
	Flash                    = Exif | 0x9209
	FocalLength              = Exif | 0x920A
	SubjectArea              = Exif | 0x9214
	MakerNote                = Exif | 0x927C
	UserComment              = Exif | 0x9286
	SubSecTime               = Exif | 0x9290
	SubSecTimeOriginal       = Exif | 0x9291
	SubSecTimeDigitized      = Exif | 0x9292
	FlashpixVersion          = Exif | 0xA000
	ColorSpace               = Exif | 0xA001
	PixelXDimension          = Exif | 0xA002
	PixelYDimension          = Exif | 0xA003
	RelatedSoundFile         = Exif | 0xA004
	InteropIFDPointer        = Exif | 0xA005
	FlashEnergy              = Exif | 0xA20B
	FocalPlaneXResolution    = Exif | 0xA20E
	FocalPlaneYResolution    = Exif | 0xA20F
	FocalPlaneResolutionUnit = Exif | 0xA210
	SubjectLocation          = Exif | 0xA214
	ExposureIndex            = Exif | 0xA215
	SensingMethod            = Exif | 0xA217
	FileSource               = Exif | 0xA300
	SceneType                = Exif | 0xA301
	CFAPattern               = Exif | 0xA302
	CustomRendered           = Exif | 0xA401
	ExposureMode             = Exif | 0xA402
	WhiteBalance             = Exif | 0xA403
	DigitalZoomRatio         = Exif | 0xA404
	FocalLengthIn35mmFilm    = Exif | 0xA405
	SceneCaptureType         = Exif | 0xA406
	GainControl              = Exif | 0xA407
	Contrast                 = Exif | 0xA408
	Saturation               = Exif | 0xA409
	Sharpness                = Exif | 0xA40A
	SubjectDistanceRange     = Exif | 0xA40C
	ImageUniqueID            = Exif | 0xA420
	CameraOwnerName          = Exif | 0xA430
	BodySerialNumber         = Exif | 0xA431
	LensSpecification        = Exif | 0xA432
	LensMake                 = Exif | 0xA433
	LensModel                = Exif | 0xA434
	LensSerialNumber         = Exif | 0xA435
)

// GPS sub-IFD tags
const (
	GPSVersionID         = GPS | 0x00
	GPSLatitudeRef       = GPS | 0x01
	GPSLatitude          = GPS | 0x02
	GPSLongitudeRef      = GPS | 0x03
	GPSLongitude         = GPS | 0x04
	GPSAltitudeRef       = GPS | 0x05
	GPSAltitude          = GPS | 0x06
	GPSTimeStamp         = GPS | 0x07
	GPSSatellites        = GPS | 0x08
	GPSStatus            = GPS | 0x09
	GPSMeasureMode       = GPS | 0x0A
	GPSDOP               = GPS | 0x0B
	GPSSpeedRef          = GPS | 0x0C
	GPSSpeed             = GPS | 0x0D
	GPSTrackRef          = GPS | 0x0E
	GPSTrack             = GPS | 0x0F
	GPSImgDirectionRef   = GPS | 0x10
	GPSImgDirection      = GPS | 0x11
	GPSMapDatum          = GPS | 0x12
	GPSDestLatitudeRef   = GPS | 0x13
	GPSDestLatitude      = GPS | 0x14
	GPSDestLongitudeRef  = GPS | 0x15
	GPSDestLongitude     = GPS | 0x16
	GPSDestBearingRef    = GPS | 0x17
	GPSDestBearing       = GPS | 0x18
	GPSDestDistanceRef   = GPS | 0x19
	GPSDestDistance      = GPS | 0x1A
	GPSProcessingMethod  = GPS | 0x1B
	GPSAreaInformation   = GPS | 0x1C
	GPSDateStamp         = GPS | 0x1D
	GPSDifferential      = GPS | 0x1E
	GPSHPositioningError = GPS | 0x1F
)

// Interoperability sub-IFD tags
const (
	InteroperabilityIndex   = Interop | 0x0001
	InteroperabilityVersion = Interop | 0x0002
	RelatedImageFileFormat  = Interop | 0x1000
	RelatedImageWidth       = Interop | 0x1001
	RelatedImageLength      = Interop | 0x1002
)

// Known reports whether t is one of the enumerated tags.
func Known(t uint32) bool {
	_, ok := names[t]
	return ok
}

// Id returns the name of tag t.
//
// Tags not enumerated in this package are reported with their
// namespace and hexadecimal code, such as "Exif.0xC4A5".
func Id(t uint32) string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("%s.0x%04X", nsName(Namespace(t)), Code(t))
}

func nsName(ns uint32) string {
	switch ns {
	case Tiff:
		return "Tiff"
	case Exif:
		return "Exif"
	case GPS:
		return "GPS"
	case Interop:
		return "Interop"
	}
	return "Unknown"
}
