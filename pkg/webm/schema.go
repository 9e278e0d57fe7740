package webm

// Element value types.
const (
	typeUnknown uint8 = iota
	typeMaster
	typeUint
	typeInt
	typeString
	typeUTF8
	typeBinary
	typeFloat
	typeDate
)

// register describes one entry in the Matroska/WebM element vocabulary.
type register struct {
	ID   uint32
	Type uint8
	Name string
}

// Element IDs. Values include the VINT marker bits.
const (
	// EBML header.
	idEBML               = 0x1a45dfa3
	idEBMLVersion        = 0x4286
	idEBMLReadVersion    = 0x42f7
	idEBMLMaxIDLength    = 0x42f2
	idEBMLMaxSizeLength  = 0x42f3
	idDocType            = 0x4282
	idDocTypeVersion     = 0x4287
	idDocTypeReadVersion = 0x4285

	// Global.
	idVoid  = 0xec
	idCRC32 = 0xbf

	// Segment.
	idSegment = 0x18538067

	// Seek head.
	idSeekHead     = 0x114d9b74
	idSeek         = 0x4dbb
	idSeekID       = 0x53ab
	idSeekPosition = 0x53ac

	// Segment info.
	idInfo                       = 0x1549a966
	idSegmentUID                 = 0x73a4
	idSegmentFilename            = 0x7384
	idPrevUID                    = 0x3cb923
	idPrevFilename               = 0x3c83ab
	idNextUID                    = 0x3eb923
	idNextFilename               = 0x3e83bb
	idSegmentFamily              = 0x4444
	idChapterTranslate           = 0x6924
	idChapterTranslateEditionUID = 0x69fc
	idChapterTranslateCodec      = 0x69bf
	idChapterTranslateID         = 0x69a5
	idTimecodeScale              = 0x2ad7b1
	idDuration                   = 0x4489
	idDateUTC                    = 0x4461
	idTitle                      = 0x7ba9
	idMuxingApp                  = 0x4d80
	idWritingApp                 = 0x5741

	// Cluster.
	idCluster           = 0x1f43b675
	idTimecode          = 0xe7
	idSilentTracks      = 0x5854
	idSilentTrackNumber = 0x58d7
	idPosition          = 0xa7
	idPrevSize          = 0xab
	idSimpleBlock       = 0xa3
	idBlockGroup        = 0xa0
	idBlock             = 0xa1
	idBlockAdditions    = 0x75a1
	idBlockMore         = 0xa6
	idBlockAddID        = 0xee
	idBlockAdditional   = 0xa5
	idBlockDuration     = 0x9b
	idReferencePriority = 0xfa
	idReferenceBlock    = 0xfb
	idCodecState        = 0xa4
	idDiscardPadding    = 0x75a2
	idSlices            = 0x8e
	idTimeSlice         = 0xe8
	idLaceNumber        = 0xcc

	// Tracks.
	idTracks                      = 0x1654ae6b
	idTrackEntry                  = 0xae
	idTrackNumber                 = 0xd7
	idTrackUID                    = 0x73c5
	idTrackType                   = 0x83
	idFlagEnabled                 = 0xb9
	idFlagDefault                 = 0x88
	idFlagForced                  = 0x55aa
	idFlagLacing                  = 0x9c
	idMinCache                    = 0x6de7
	idMaxCache                    = 0x6df8
	idDefaultDuration             = 0x23e383
	idDefaultDecodedFieldDuration = 0x234e7a
	idMaxBlockAdditionID          = 0x55ee
	idName                        = 0x536e
	idLanguage                    = 0x22b59c
	idCodecID                     = 0x86
	idCodecPrivate                = 0x63a2
	idCodecName                   = 0x258688
	idAttachmentLink              = 0x7446
	idCodecDecodeAll              = 0xaa
	idTrackOverlay                = 0x6fab
	idCodecDelay                  = 0x56aa
	idSeekPreRoll                 = 0x56bb
	idTrackTranslate              = 0x6624
	idTrackTranslateEditionUID    = 0x66fc
	idTrackTranslateCodec         = 0x66bf
	idTrackTranslateTrackID       = 0x66a5

	// Video.
	idVideo             = 0xe0
	idFlagInterlaced    = 0x9a
	idStereoMode        = 0x53b8
	idAlphaMode         = 0x53c0
	idPixelWidth        = 0xb0
	idPixelHeight       = 0xba
	idPixelCropBottom   = 0x54aa
	idPixelCropTop      = 0x54bb
	idPixelCropLeft     = 0x54cc
	idPixelCropRight    = 0x54dd
	idDisplayWidth      = 0x54b0
	idDisplayHeight     = 0x54ba
	idDisplayUnit       = 0x54b2
	idAspectRatioType   = 0x54b3
	idColourSpace       = 0x2eb524
	idColour            = 0x55b0
	idMatrixCoefficients = 0x55b1
	idBitsPerChannel    = 0x55b2
	idRange             = 0x55b9
	idTransferCharacteristics = 0x55ba
	idPrimaries         = 0x55bb
	idMaxCLL            = 0x55bc
	idMaxFALL           = 0x55bd
	idMasteringMetadata = 0x55d0
	idPrimaryRChromaticityX = 0x55d1
	idPrimaryRChromaticityY = 0x55d2
	idPrimaryGChromaticityX = 0x55d3
	idPrimaryGChromaticityY = 0x55d4
	idPrimaryBChromaticityX = 0x55d5
	idPrimaryBChromaticityY = 0x55d6
	idWhitePointChromaticityX = 0x55d7
	idWhitePointChromaticityY = 0x55d8
	idLuminanceMax      = 0x55d9
	idLuminanceMin      = 0x55da
	idProjection        = 0x7670
	idProjectionType    = 0x7671
	idProjectionPrivate = 0x7672
	idProjectionPoseYaw = 0x7673
	idProjectionPosePitch = 0x7674
	idProjectionPoseRoll = 0x7675

	// Audio.
	idAudio                   = 0xe1
	idSamplingFrequency       = 0xb5
	idOutputSamplingFrequency = 0x78b5
	idChannels                = 0x9f
	idBitDepth                = 0x6264

	// Track operation.
	idTrackOperation     = 0xe2
	idTrackCombinePlanes = 0xe3
	idTrackPlane         = 0xe4
	idTrackPlaneUID      = 0xe5
	idTrackPlaneType     = 0xe6
	idTrackJoinBlocks    = 0xe9
	idTrackJoinUID       = 0xed

	// Content encoding.
	idContentEncodings     = 0x6d80
	idContentEncoding      = 0x6240
	idContentEncodingOrder = 0x5031
	idContentEncodingScope = 0x5032
	idContentEncodingType  = 0x5033
	idContentCompression   = 0x5034
	idContentCompAlgo      = 0x4254
	idContentCompSettings  = 0x4255
	idContentEncryption    = 0x5035
	idContentEncAlgo       = 0x47e1
	idContentEncKeyID      = 0x47e2
	idContentSignature     = 0x47e3
	idContentSigKeyID      = 0x47e4
	idContentSigAlgo       = 0x47e5
	idContentSigHashAlgo   = 0x47e6

	// Cues.
	idCues                = 0x1c53bb6b
	idCuePoint            = 0xbb
	idCueTime             = 0xb3
	idCueTrackPositions   = 0xb7
	idCueTrack            = 0xf7
	idCueClusterPosition  = 0xf1
	idCueRelativePosition = 0xf0
	idCueDuration         = 0xb2
	idCueBlockNumber      = 0x5378
	idCueCodecState       = 0xea
	idCueReference        = 0xdb
	idCueRefTime          = 0x96

	// Attachments.
	idAttachments     = 0x1941a469
	idAttachedFile    = 0x61a7
	idFileDescription = 0x467e
	idFileName        = 0x466e
	idFileMimeType    = 0x6460
	idFileData        = 0x465c
	idFileUID         = 0x46ae

	// Chapters.
	idChapters                 = 0x1043a770
	idEditionEntry             = 0x45b9
	idEditionUID               = 0x45bc
	idEditionFlagHidden        = 0x45bd
	idEditionFlagDefault       = 0x45db
	idEditionFlagOrdered       = 0x45dd
	idChapterAtom              = 0xb6
	idChapterUID               = 0x73c4
	idChapterStringUID         = 0x5654
	idChapterTimeStart         = 0x91
	idChapterTimeEnd           = 0x92
	idChapterFlagHidden        = 0x98
	idChapterFlagEnabled       = 0x4598
	idChapterSegmentUID        = 0x6e67
	idChapterSegmentEditionUID = 0x6ebc
	idChapterPhysicalEquiv     = 0x63c3
	idChapterTrack             = 0x8f
	idChapterTrackNumber       = 0x89
	idChapterDisplay           = 0x80
	idChapString               = 0x85
	idChapLanguage             = 0x437c
	idChapCountry              = 0x437e
	idChapProcess              = 0x6944
	idChapProcessCodecID       = 0x6955
	idChapProcessPrivate       = 0x450d
	idChapProcessCommand       = 0x6911
	idChapProcessTime          = 0x6922
	idChapProcessData          = 0x6933

	// Tags.
	idTags            = 0x1254c367
	idTag             = 0x7373
	idTargets         = 0x63c0
	idTargetTypeValue = 0x68ca
	idTargetType      = 0x63ca
	idTagTrackUID     = 0x63c5
	idTagEditionUID   = 0x63c9
	idTagChapterUID   = 0x63c4
	idTagAttachmentUID = 0x63c6
	idSimpleTag       = 0x67c8
	idTagName         = 0x45a3
	idTagLanguage     = 0x447a
	idTagDefault      = 0x4484
	idTagString       = 0x4487
	idTagBinary       = 0x4485
)

// schema is the closed element vocabulary. Any ID absent from this
// table is a decode error, never a pass-through.
var schema = map[uint32]register{
	idEBML:               {idEBML, typeMaster, "EBML"},
	idEBMLVersion:        {idEBMLVersion, typeUint, "EBMLVersion"},
	idEBMLReadVersion:    {idEBMLReadVersion, typeUint, "EBMLReadVersion"},
	idEBMLMaxIDLength:    {idEBMLMaxIDLength, typeUint, "EBMLMaxIDLength"},
	idEBMLMaxSizeLength:  {idEBMLMaxSizeLength, typeUint, "EBMLMaxSizeLength"},
	idDocType:            {idDocType, typeString, "DocType"},
	idDocTypeVersion:     {idDocTypeVersion, typeUint, "DocTypeVersion"},
	idDocTypeReadVersion: {idDocTypeReadVersion, typeUint, "DocTypeReadVersion"},

	idVoid:  {idVoid, typeBinary, "Void"},
	idCRC32: {idCRC32, typeBinary, "CRC-32"},

	idSegment: {idSegment, typeMaster, "Segment"},

	idSeekHead:     {idSeekHead, typeMaster, "SeekHead"},
	idSeek:         {idSeek, typeMaster, "Seek"},
	idSeekID:       {idSeekID, typeBinary, "SeekID"},
	idSeekPosition: {idSeekPosition, typeUint, "SeekPosition"},

	idInfo:                       {idInfo, typeMaster, "Info"},
	idSegmentUID:                 {idSegmentUID, typeBinary, "SegmentUID"},
	idSegmentFilename:            {idSegmentFilename, typeUTF8, "SegmentFilename"},
	idPrevUID:                    {idPrevUID, typeBinary, "PrevUID"},
	idPrevFilename:               {idPrevFilename, typeUTF8, "PrevFilename"},
	idNextUID:                    {idNextUID, typeBinary, "NextUID"},
	idNextFilename:               {idNextFilename, typeUTF8, "NextFilename"},
	idSegmentFamily:              {idSegmentFamily, typeBinary, "SegmentFamily"},
	idChapterTranslate:           {idChapterTranslate, typeMaster, "ChapterTranslate"},
	idChapterTranslateEditionUID: {idChapterTranslateEditionUID, typeUint, "ChapterTranslateEditionUID"},
	idChapterTranslateCodec:      {idChapterTranslateCodec, typeUint, "ChapterTranslateCodec"},
	idChapterTranslateID:         {idChapterTranslateID, typeBinary, "ChapterTranslateID"},
	idTimecodeScale:              {idTimecodeScale, typeUint, "TimecodeScale"},
	idDuration:                   {idDuration, typeFloat, "Duration"},
	idDateUTC:                    {idDateUTC, typeDate, "DateUTC"},
	idTitle:                      {idTitle, typeUTF8, "Title"},
	idMuxingApp:                  {idMuxingApp, typeUTF8, "MuxingApp"},
	idWritingApp:                 {idWritingApp, typeUTF8, "WritingApp"},

	idCluster:           {idCluster, typeMaster, "Cluster"},
	idTimecode:          {idTimecode, typeUint, "Timecode"},
	idSilentTracks:      {idSilentTracks, typeMaster, "SilentTracks"},
	idSilentTrackNumber: {idSilentTrackNumber, typeUint, "SilentTrackNumber"},
	idPosition:          {idPosition, typeUint, "Position"},
	idPrevSize:          {idPrevSize, typeUint, "PrevSize"},
	idSimpleBlock:       {idSimpleBlock, typeBinary, "SimpleBlock"},
	idBlockGroup:        {idBlockGroup, typeMaster, "BlockGroup"},
	idBlock:             {idBlock, typeBinary, "Block"},
	idBlockAdditions:    {idBlockAdditions, typeMaster, "BlockAdditions"},
	idBlockMore:         {idBlockMore, typeMaster, "BlockMore"},
	idBlockAddID:        {idBlockAddID, typeUint, "BlockAddID"},
	idBlockAdditional:   {idBlockAdditional, typeBinary, "BlockAdditional"},
	idBlockDuration:     {idBlockDuration, typeUint, "BlockDuration"},
	idReferencePriority: {idReferencePriority, typeUint, "ReferencePriority"},
	idReferenceBlock:    {idReferenceBlock, typeInt, "ReferenceBlock"},
	idCodecState:        {idCodecState, typeBinary, "CodecState"},
	idDiscardPadding:    {idDiscardPadding, typeInt, "DiscardPadding"},
	idSlices:            {idSlices, typeMaster, "Slices"},
	idTimeSlice:         {idTimeSlice, typeMaster, "TimeSlice"},
	idLaceNumber:        {idLaceNumber, typeUint, "LaceNumber"},

	idTracks:                      {idTracks, typeMaster, "Tracks"},
	idTrackEntry:                  {idTrackEntry, typeMaster, "TrackEntry"},
	idTrackNumber:                 {idTrackNumber, typeUint, "TrackNumber"},
	idTrackUID:                    {idTrackUID, typeUint, "TrackUID"},
	idTrackType:                   {idTrackType, typeUint, "TrackType"},
	idFlagEnabled:                 {idFlagEnabled, typeUint, "FlagEnabled"},
	idFlagDefault:                 {idFlagDefault, typeUint, "FlagDefault"},
	idFlagForced:                  {idFlagForced, typeUint, "FlagForced"},
	idFlagLacing:                  {idFlagLacing, typeUint, "FlagLacing"},
	idMinCache:                    {idMinCache, typeUint, "MinCache"},
	idMaxCache:                    {idMaxCache, typeUint, "MaxCache"},
	idDefaultDuration:             {idDefaultDuration, typeUint, "DefaultDuration"},
	idDefaultDecodedFieldDuration: {idDefaultDecodedFieldDuration, typeUint, "DefaultDecodedFieldDuration"},
	idMaxBlockAdditionID:          {idMaxBlockAdditionID, typeUint, "MaxBlockAdditionID"},
	idName:                        {idName, typeUTF8, "Name"},
	idLanguage:                    {idLanguage, typeString, "Language"},
	idCodecID:                     {idCodecID, typeString, "CodecID"},
	idCodecPrivate:                {idCodecPrivate, typeBinary, "CodecPrivate"},
	idCodecName:                   {idCodecName, typeUTF8, "CodecName"},
	idAttachmentLink:              {idAttachmentLink, typeUint, "AttachmentLink"},
	idCodecDecodeAll:              {idCodecDecodeAll, typeUint, "CodecDecodeAll"},
	idTrackOverlay:                {idTrackOverlay, typeUint, "TrackOverlay"},
	idCodecDelay:                  {idCodecDelay, typeUint, "CodecDelay"},
	idSeekPreRoll:                 {idSeekPreRoll, typeUint, "SeekPreRoll"},
	idTrackTranslate:              {idTrackTranslate, typeMaster, "TrackTranslate"},
	idTrackTranslateEditionUID:    {idTrackTranslateEditionUID, typeUint, "TrackTranslateEditionUID"},
	idTrackTranslateCodec:         {idTrackTranslateCodec, typeUint, "TrackTranslateCodec"},
	idTrackTranslateTrackID:       {idTrackTranslateTrackID, typeBinary, "TrackTranslateTrackID"},

	idVideo:                   {idVideo, typeMaster, "Video"},
	idFlagInterlaced:          {idFlagInterlaced, typeUint, "FlagInterlaced"},
	idStereoMode:              {idStereoMode, typeUint, "StereoMode"},
	idAlphaMode:               {idAlphaMode, typeUint, "AlphaMode"},
	idPixelWidth:              {idPixelWidth, typeUint, "PixelWidth"},
	idPixelHeight:             {idPixelHeight, typeUint, "PixelHeight"},
	idPixelCropBottom:         {idPixelCropBottom, typeUint, "PixelCropBottom"},
	idPixelCropTop:            {idPixelCropTop, typeUint, "PixelCropTop"},
	idPixelCropLeft:           {idPixelCropLeft, typeUint, "PixelCropLeft"},
	idPixelCropRight:          {idPixelCropRight, typeUint, "PixelCropRight"},
	idDisplayWidth:            {idDisplayWidth, typeUint, "DisplayWidth"},
	idDisplayHeight:           {idDisplayHeight, typeUint, "DisplayHeight"},
	idDisplayUnit:             {idDisplayUnit, typeUint, "DisplayUnit"},
	idAspectRatioType:         {idAspectRatioType, typeUint, "AspectRatioType"},
	idColourSpace:             {idColourSpace, typeBinary, "ColourSpace"},
	idColour:                  {idColour, typeMaster, "Colour"},
	idMatrixCoefficients:      {idMatrixCoefficients, typeUint, "MatrixCoefficients"},
	idBitsPerChannel:          {idBitsPerChannel, typeUint, "BitsPerChannel"},
	idRange:                   {idRange, typeUint, "Range"},
	idTransferCharacteristics: {idTransferCharacteristics, typeUint, "TransferCharacteristics"},
	idPrimaries:               {idPrimaries, typeUint, "Primaries"},
	idMaxCLL:                  {idMaxCLL, typeUint, "MaxCLL"},
	idMaxFALL:                 {idMaxFALL, typeUint, "MaxFALL"},
	idMasteringMetadata:       {idMasteringMetadata, typeMaster, "MasteringMetadata"},
	idPrimaryRChromaticityX:   {idPrimaryRChromaticityX, typeFloat, "PrimaryRChromaticityX"},
	idPrimaryRChromaticityY:   {idPrimaryRChromaticityY, typeFloat, "PrimaryRChromaticityY"},
	idPrimaryGChromaticityX:   {idPrimaryGChromaticityX, typeFloat, "PrimaryGChromaticityX"},
	idPrimaryGChromaticityY:   {idPrimaryGChromaticityY, typeFloat, "PrimaryGChromaticityY"},
	idPrimaryBChromaticityX:   {idPrimaryBChromaticityX, typeFloat, "PrimaryBChromaticityX"},
	idPrimaryBChromaticityY:   {idPrimaryBChromaticityY, typeFloat, "PrimaryBChromaticityY"},
	idWhitePointChromaticityX: {idWhitePointChromaticityX, typeFloat, "WhitePointChromaticityX"},
	idWhitePointChromaticityY: {idWhitePointChromaticityY, typeFloat, "WhitePointChromaticityY"},
	idLuminanceMax:            {idLuminanceMax, typeFloat, "LuminanceMax"},
	idLuminanceMin:            {idLuminanceMin, typeFloat, "LuminanceMin"},
	idProjection:              {idProjection, typeMaster, "Projection"},
	idProjectionType:          {idProjectionType, typeUint, "ProjectionType"},
	idProjectionPrivate:       {idProjectionPrivate, typeBinary, "ProjectionPrivate"},
	idProjectionPoseYaw:       {idProjectionPoseYaw, typeFloat, "ProjectionPoseYaw"},
	idProjectionPosePitch:     {idProjectionPosePitch, typeFloat, "ProjectionPosePitch"},
	idProjectionPoseRoll:      {idProjectionPoseRoll, typeFloat, "ProjectionPoseRoll"},

	idAudio:                   {idAudio, typeMaster, "Audio"},
	idSamplingFrequency:       {idSamplingFrequency, typeFloat, "SamplingFrequency"},
	idOutputSamplingFrequency: {idOutputSamplingFrequency, typeFloat, "OutputSamplingFrequency"},
	idChannels:                {idChannels, typeUint, "Channels"},
	idBitDepth:                {idBitDepth, typeUint, "BitDepth"},

	idTrackOperation:     {idTrackOperation, typeMaster, "TrackOperation"},
	idTrackCombinePlanes: {idTrackCombinePlanes, typeMaster, "TrackCombinePlanes"},
	idTrackPlane:         {idTrackPlane, typeMaster, "TrackPlane"},
	idTrackPlaneUID:      {idTrackPlaneUID, typeUint, "TrackPlaneUID"},
	idTrackPlaneType:     {idTrackPlaneType, typeUint, "TrackPlaneType"},
	idTrackJoinBlocks:    {idTrackJoinBlocks, typeMaster, "TrackJoinBlocks"},
	idTrackJoinUID:       {idTrackJoinUID, typeUint, "TrackJoinUID"},

	idContentEncodings:     {idContentEncodings, typeMaster, "ContentEncodings"},
	idContentEncoding:      {idContentEncoding, typeMaster, "ContentEncoding"},
	idContentEncodingOrder: {idContentEncodingOrder, typeUint, "ContentEncodingOrder"},
	idContentEncodingScope: {idContentEncodingScope, typeUint, "ContentEncodingScope"},
	idContentEncodingType:  {idContentEncodingType, typeUint, "ContentEncodingType"},
	idContentCompression:   {idContentCompression, typeMaster, "ContentCompression"},
	idContentCompAlgo:      {idContentCompAlgo, typeUint, "ContentCompAlgo"},
	idContentCompSettings:  {idContentCompSettings, typeBinary, "ContentCompSettings"},
	idContentEncryption:    {idContentEncryption, typeMaster, "ContentEncryption"},
	idContentEncAlgo:       {idContentEncAlgo, typeUint, "ContentEncAlgo"},
	idContentEncKeyID:      {idContentEncKeyID, typeBinary, "ContentEncKeyID"},
	idContentSignature:     {idContentSignature, typeBinary, "ContentSignature"},
	idContentSigKeyID:      {idContentSigKeyID, typeBinary, "ContentSigKeyID"},
	idContentSigAlgo:       {idContentSigAlgo, typeUint, "ContentSigAlgo"},
	idContentSigHashAlgo:   {idContentSigHashAlgo, typeUint, "ContentSigHashAlgo"},

	idCues:                {idCues, typeMaster, "Cues"},
	idCuePoint:            {idCuePoint, typeMaster, "CuePoint"},
	idCueTime:             {idCueTime, typeUint, "CueTime"},
	idCueTrackPositions:   {idCueTrackPositions, typeMaster, "CueTrackPositions"},
	idCueTrack:            {idCueTrack, typeUint, "CueTrack"},
	idCueClusterPosition:  {idCueClusterPosition, typeUint, "CueClusterPosition"},
	idCueRelativePosition: {idCueRelativePosition, typeUint, "CueRelativePosition"},
	idCueDuration:         {idCueDuration, typeUint, "CueDuration"},
	idCueBlockNumber:      {idCueBlockNumber, typeUint, "CueBlockNumber"},
	idCueCodecState:       {idCueCodecState, typeUint, "CueCodecState"},
	idCueReference:        {idCueReference, typeMaster, "CueReference"},
	idCueRefTime:          {idCueRefTime, typeUint, "CueRefTime"},

	idAttachments:     {idAttachments, typeMaster, "Attachments"},
	idAttachedFile:    {idAttachedFile, typeMaster, "AttachedFile"},
	idFileDescription: {idFileDescription, typeUTF8, "FileDescription"},
	idFileName:        {idFileName, typeUTF8, "FileName"},
	idFileMimeType:    {idFileMimeType, typeString, "FileMimeType"},
	idFileData:        {idFileData, typeBinary, "FileData"},
	idFileUID:         {idFileUID, typeUint, "FileUID"},

	idChapters:                 {idChapters, typeMaster, "Chapters"},
	idEditionEntry:             {idEditionEntry, typeMaster, "EditionEntry"},
	idEditionUID:               {idEditionUID, typeUint, "EditionUID"},
	idEditionFlagHidden:        {idEditionFlagHidden, typeUint, "EditionFlagHidden"},
	idEditionFlagDefault:       {idEditionFlagDefault, typeUint, "EditionFlagDefault"},
	idEditionFlagOrdered:       {idEditionFlagOrdered, typeUint, "EditionFlagOrdered"},
	idChapterAtom:              {idChapterAtom, typeMaster, "ChapterAtom"},
	idChapterUID:               {idChapterUID, typeUint, "ChapterUID"},
	idChapterStringUID:         {idChapterStringUID, typeUTF8, "ChapterStringUID"},
	idChapterTimeStart:         {idChapterTimeStart, typeUint, "ChapterTimeStart"},
	idChapterTimeEnd:           {idChapterTimeEnd, typeUint, "ChapterTimeEnd"},
	idChapterFlagHidden:        {idChapterFlagHidden, typeUint, "ChapterFlagHidden"},
	idChapterFlagEnabled:       {idChapterFlagEnabled, typeUint, "ChapterFlagEnabled"},
	idChapterSegmentUID:        {idChapterSegmentUID, typeBinary, "ChapterSegmentUID"},
	idChapterSegmentEditionUID: {idChapterSegmentEditionUID, typeUint, "ChapterSegmentEditionUID"},
	idChapterPhysicalEquiv:     {idChapterPhysicalEquiv, typeUint, "ChapterPhysicalEquiv"},
	idChapterTrack:             {idChapterTrack, typeMaster, "ChapterTrack"},
	idChapterTrackNumber:       {idChapterTrackNumber, typeUint, "ChapterTrackNumber"},
	idChapterDisplay:           {idChapterDisplay, typeMaster, "ChapterDisplay"},
	idChapString:               {idChapString, typeUTF8, "ChapString"},
	idChapLanguage:             {idChapLanguage, typeString, "ChapLanguage"},
	idChapCountry:              {idChapCountry, typeString, "ChapCountry"},
	idChapProcess:              {idChapProcess, typeMaster, "ChapProcess"},
	idChapProcessCodecID:       {idChapProcessCodecID, typeUint, "ChapProcessCodecID"},
	idChapProcessPrivate:       {idChapProcessPrivate, typeBinary, "ChapProcessPrivate"},
	idChapProcessCommand:       {idChapProcessCommand, typeMaster, "ChapProcessCommand"},
	idChapProcessTime:          {idChapProcessTime, typeUint, "ChapProcessTime"},
	idChapProcessData:          {idChapProcessData, typeBinary, "ChapProcessData"},

	idTags:             {idTags, typeMaster, "Tags"},
	idTag:              {idTag, typeMaster, "Tag"},
	idTargets:          {idTargets, typeMaster, "Targets"},
	idTargetTypeValue:  {idTargetTypeValue, typeUint, "TargetTypeValue"},
	idTargetType:       {idTargetType, typeString, "TargetType"},
	idTagTrackUID:      {idTagTrackUID, typeUint, "TagTrackUID"},
	idTagEditionUID:    {idTagEditionUID, typeUint, "TagEditionUID"},
	idTagChapterUID:    {idTagChapterUID, typeUint, "TagChapterUID"},
	idTagAttachmentUID: {idTagAttachmentUID, typeUint, "TagAttachmentUID"},
	idSimpleTag:        {idSimpleTag, typeMaster, "SimpleTag"},
	idTagName:          {idTagName, typeUTF8, "TagName"},
	idTagLanguage:      {idTagLanguage, typeString, "TagLanguage"},
	idTagDefault:       {idTagDefault, typeUint, "TagDefault"},
	idTagString:        {idTagString, typeUTF8, "TagString"},
	idTagBinary:        {idTagBinary, typeBinary, "TagBinary"},
}

// lookupRegister resolves a raw element ID against the schema.
func lookupRegister(id uint32) (register, bool) {
	reg, exists := schema[id]
	return reg, exists
}
