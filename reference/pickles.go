package reference

// pickles maps spectral types to Pickles (1998) UVKLIB files.
// Types listed more than once in the library keep the last file.
var pickles = map[string]string{
	"O5V":    "pickles_1.fits",
	"O9V":    "pickles_2.fits",
	"B0V":    "pickles_3.fits",
	"B1V":    "pickles_4.fits",
	"B3V":    "pickles_5.fits",
	"B57V":   "pickles_6.fits",
	"B8V":    "pickles_7.fits",
	"B9V":    "pickles_8.fits",
	"A0V":    "pickles_9.fits",
	"A2V":    "pickles_10.fits",
	"A3V":    "pickles_11.fits",
	"A5V":    "pickles_12.fits",
	"A7V":    "pickles_13.fits",
	"F0V":    "pickles_14.fits",
	"F2V":    "pickles_15.fits",
	"F5V":    "pickles_17.fits",
	"F6V":    "pickles_19.fits",
	"F8V":    "pickles_22.fits",
	"G0V":    "pickles_25.fits",
	"G2V":    "pickles_26.fits",
	"G5V":    "pickles_29.fits",
	"G8V":    "pickles_30.fits",
	"K0V":    "pickles_32.fits",
	"K2V":    "pickles_33.fits",
	"K3V":    "pickles_34.fits",
	"K4V":    "pickles_35.fits",
	"K5V":    "pickles_36.fits",
	"K7V":    "pickles_37.fits",
	"M0V":    "pickles_38.fits",
	"M1V":    "pickles_39.fits",
	"M2V":    "pickles_40.fits",
	"M2.5V":  "pickles_41.fits",
	"M3V":    "pickles_42.fits",
	"M4V":    "pickles_43.fits",
	"M5V":    "pickles_44.fits",
	"M6V":    "pickles_45.fits",
	"B2IV":   "pickles_46.fits",
	"B6IV":   "pickles_47.fits",
	"A0IV":   "pickles_48.fits",
	"A47IV":  "pickles_49.fits",
	"F02IV":  "pickles_50.fits",
	"F5IV":   "pickles_51.fits",
	"F8IV":   "pickles_52.fits",
	"G0IV":   "pickles_53.fits",
	"G2IV":   "pickles_54.fits",
	"G5IV":   "pickles_55.fits",
	"G8IV":   "pickles_56.fits",
	"K0IV":   "pickles_57.fits",
	"K1IV":   "pickles_58.fits",
	"K3IV":   "pickles_59.fits",
	"O8III":  "pickles_60.fits",
	"B12III": "pickles_61.fits",
	"B3III":  "pickles_62.fits",
	"B5III":  "pickles_63.fits",
	"B9III":  "pickles_64.fits",
	"A0III":  "pickles_65.fits",
	"A3III":  "pickles_66.fits",
	"A5III":  "pickles_67.fits",
	"A7III":  "pickles_68.fits",
	"F0III":  "pickles_69.fits",
	"F2III":  "pickles_70.fits",
	"F5III":  "pickles_71.fits",
	"G0III":  "pickles_72.fits",
	"G5III":  "pickles_75.fits",
	"G8III":  "pickles_77.fits",
	"K0III":  "pickles_80.fits",
	"K1III":  "pickles_83.fits",
	"K2III":  "pickles_86.fits",
	"K3III":  "pickles_89.fits",
	"K4III":  "pickles_92.fits",
	"K5III":  "pickles_94.fits",
	"M0III":  "pickles_95.fits",
	"M1III":  "pickles_96.fits",
	"M2III":  "pickles_97.fits",
	"M3III":  "pickles_98.fits",
	"M4III":  "pickles_99.fits",
	"M5III":  "pickles_100.fits",
	"M6III":  "pickles_101.fits",
	"M7III":  "pickles_102.fits",
	"M8III":  "pickles_103.fits",
	"M9III":  "pickles_104.fits",
	"M10III": "pickles_105.fits",
	"B2II":   "pickles_106.fits",
	"B5II":   "pickles_107.fits",
	"F0II":   "pickles_108.fits",
	"F2II":   "pickles_109.fits",
	"G5II":   "pickles_110.fits",
	"K01II":  "pickles_111.fits",
	"K34II":  "pickles_112.fits",
	"M3II":   "pickles_113.fits",
	"B0I":    "pickles_114.fits",
	"B1I":    "pickles_115.fits",
	"B3I":    "pickles_116.fits",
	"B5I":    "pickles_117.fits",
	"B8I":    "pickles_118.fits",
	"A0I":    "pickles_119.fits",
	"A2I":    "pickles_120.fits",
	"F0I":    "pickles_121.fits",
	"F5I":    "pickles_122.fits",
	"F8I":    "pickles_123.fits",
	"G0I":    "pickles_124.fits",
	"G2I":    "pickles_125.fits",
	"G5I":    "pickles_126.fits",
	"G8I":    "pickles_127.fits",
	"K2I":    "pickles_128.fits",
	"K3I":    "pickles_129.fits",
	"K4I":    "pickles_130.fits",
	"M2I":    "pickles_131.fits",
}
