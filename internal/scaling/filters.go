// Package scaling generates samples of the Daubechies scaling functions
// and their derivatives on dyadic grids. The grids feed the interpolator
// benchmark: the densest grid acts as ground truth, coarser grids are the
// inputs the candidate interpolators reconstruct from.
package scaling

import (
	"errors"
	"fmt"
)

// Supported range of vanishing moments.
const (
	MinMoments = 2
	MaxMoments = 15
)

var (
	// ErrUnsupportedMoments reports a filter order outside 2..15.
	ErrUnsupportedMoments = errors.New("unsupported number of vanishing moments")

	// ErrUnsupportedDerivative reports a derivative order the scaling
	// function does not have, or one beyond the catalog.
	ErrUnsupportedDerivative = errors.New("unsupported derivative order")

	// ErrUnsupportedLevel reports a negative refinement level.
	ErrUnsupportedLevel = errors.New("unsupported refinement level")
)

// SupportWidth returns the length 2p-1 of the support [0, 2p-1] of the
// scaling function with p vanishing moments.
func SupportWidth(p int) int {
	return 2*p - 1
}

// Filter returns the Daubechies low-pass filter h_0..h_{2p-1} for p
// vanishing moments. The coefficients satisfy sum(h) = sqrt(2) and the
// orthonormality relations sum_k h_k*h_{k+2m} = delta_{0m}.
func Filter(p int) ([]float64, error) {
	h, ok := daubechiesFilters[p]
	if !ok {
		return nil, fmt.Errorf("%w: p=%d (supported: %d..%d)", ErrUnsupportedMoments, p, MinMoments, MaxMoments)
	}
	return h, nil
}

// Min-phase Daubechies filters, computed by spectral factorization of the
// halfband polynomial with the roots inside the unit circle.
var daubechiesFilters = map[int][]float64{
	2: {
		0.48296291314453416,
		0.83651630373780794,
		0.22414386804201339,
		-0.12940952255126037,
	},
	3: {
		0.33267055295008263,
		0.80689150931109255,
		0.45987750211849154,
		-0.13501102001025458,
		-0.085441273882026658,
		0.035226291885709533,
	},
	4: {
		0.23037781330889651,
		0.71484657055291567,
		0.63088076792985892,
		-0.027983769416859854,
		-0.18703481171909309,
		0.030841381835560764,
		0.032883011666885197,
		-0.010597401785069032,
	},
	5: {
		0.16010239797419293,
		0.60382926979718965,
		0.72430852843777294,
		0.13842814590132074,
		-0.24229488706638203,
		-0.032244869584638375,
		0.077571493840045719,
		-0.0062414902127982744,
		-0.012580751999081999,
		0.0033357252854737712,
	},
	6: {
		0.11154074335010947,
		0.49462389039845306,
		0.75113390802109536,
		0.31525035170919763,
		-0.22626469396543983,
		-0.12976686756726194,
		0.097501605587323043,
		0.027522865530305727,
		-0.03158203931748603,
		0.00055384220116149613,
		0.0047772575109455108,
		-0.0010773010853084796,
	},
	7: {
		0.077852054085009184,
		0.39653931948191729,
		0.72913209084623509,
		0.46978228740519312,
		-0.14390600392856498,
		-0.22403618499387498,
		0.071309219266830259,
		0.080612609151083078,
		-0.038029936935014413,
		-0.016574541630666881,
		0.01255099855609984,
		0.00042957797292136651,
		-0.0018016407040474908,
		0.00035371379997452024,
	},
	8: {
		0.054415842243104008,
		0.31287159091429995,
		0.67563073629728976,
		0.58535468365420673,
		-0.015829105256349306,
		-0.28401554296154691,
		0.00047248457391328279,
		0.12874742662047847,
		-0.017369301001807547,
		-0.044088253930794755,
		0.013981027917398282,
		0.0087460940474057766,
		-0.0048703529934515741,
		-0.00039174037337694705,
		0.00067544940645056933,
		-0.00011747678412476953,
	},
	9: {
		0.038077947363878345,
		0.24383467461259034,
		0.60482312369011115,
		0.65728807805130052,
		0.13319738582500756,
		-0.29327378327917492,
		-0.096840783222976456,
		0.14854074933810638,
		0.03072568147933338,
		-0.067632829061329974,
		0.00025094711483145197,
		0.022361662123679096,
		-0.0047232047577513972,
		-0.0042815036824634303,
		0.0018476468830562265,
		0.00023038576352319597,
		-0.00025196318894271012,
		3.9347320316271603e-5,
	},
	10: {
		0.026670057900555554,
		0.1881768000776915,
		0.52720118893172563,
		0.68845903945360354,
		0.28117234366057747,
		-0.24984642432731538,
		-0.19594627437737705,
		0.12736934033579325,
		0.093057364603572348,
		-0.071394147166397082,
		-0.029457536821875813,
		0.033212674059341002,
		0.0036065535669561697,
		-0.010733175483330575,
		0.0013953517470529011,
		0.0019924052951850561,
		-0.00068585669495971162,
		-0.00011646685512928545,
		9.3588670320069592e-5,
		-1.3264202894521244e-5,
	},
	11: {
		0.018694297761471083,
		0.1440670211506245,
		0.44989976435604534,
		0.68568677491620056,
		0.41196436894790744,
		-0.16227524502749036,
		-0.27423084681794696,
		0.066043588196683198,
		0.14981201246637849,
		-0.046479955116684187,
		-0.066438785695025204,
		0.031335090219046076,
		0.020840904360181062,
		-0.015364820906201599,
		-0.0033408588730144454,
		0.0049284176560590413,
		-0.00030859285881514319,
		-0.00089302325066626461,
		0.00024915252355282348,
		5.4439074699368475e-5,
		-3.4634984186984996e-5,
		4.4942742772365103e-6,
	},
	12: {
		0.013112257957229518,
		0.10956627282118515,
		0.37735513521421266,
		0.65719872257930712,
		0.51588647842781565,
		-0.044763885653774628,
		-0.31617845375278553,
		-0.023779257256069726,
		0.18247860592757967,
		0.0053595696743521503,
		-0.096432120096507076,
		0.010849130255822185,
		0.041546277495084438,
		-0.01221864906974828,
		-0.012840825198300683,
		0.0067114990087955096,
		0.0022486072409952378,
		-0.0021795036186277603,
		6.5451282125095959e-6,
		0.00038865306282093143,
		-8.850410920820432e-5,
		-2.4241545757030785e-5,
		1.2776952219379767e-5,
		-1.5290717580685109e-6,
	},
	13: {
		0.0092021335389623673,
		0.082861243872902779,
		0.31199632216043804,
		0.61105585115878769,
		0.58888957043121892,
		0.086985726179647241,
		-0.31497290771138864,
		-0.12457673075081525,
		0.17947607942933985,
		0.072948933656777168,
		-0.10580761818793433,
		-0.026488406475343694,
		0.056139477100283428,
		0.0023799722540590786,
		-0.02383142071032365,
		0.0039239414487974161,
		0.0072555894016175662,
		-0.0027619112346568622,
		-0.0013156739118922989,
		0.00093232613086726335,
		4.9251525126289464e-5,
		-0.00016512898855650549,
		3.0678537579325496e-5,
		1.0441930571408138e-5,
		-4.7004164793608683e-6,
		5.2200350984548644e-7,
	},
	14: {
		0.0064611534600879476,
		0.062364758849398898,
		0.25485026779262138,
		0.55430561794089384,
		0.63118784910485681,
		0.21867068775890652,
		-0.27168855227874805,
		-0.21803352999327605,
		0.1383952138648066,
		0.1399890165844607,
		-0.086748411568169689,
		-0.071548955504046136,
		0.055237126259216042,
		0.026981408307912916,
		-0.030185351540390634,
		-0.0056150495303569593,
		0.012789493266333409,
		-0.00074621898926838497,
		-0.0038496388680221874,
		0.0010616910856067619,
		0.00070802115423552786,
		-0.0003868319473129545,
		-4.1777245770372596e-5,
		6.8755042526975093e-5,
		-1.0337209184570774e-5,
		-4.3897049017813942e-6,
		1.7249946753678127e-6,
		-1.7871399683113592e-7,
	},
	15: {
		0.0045385373615788992,
		0.046743394892766271,
		0.20602386398699574,
		0.4926317717081396,
		0.64581314035742432,
		0.33900253545473152,
		-0.19320413960914543,
		-0.28888259656696563,
		0.065282952848772821,
		0.19014671400712299,
		-0.039666176555790945,
		-0.11112093603723169,
		0.033877143923507685,
		0.054780550584507613,
		-0.025767007328439964,
		-0.020810050169693083,
		0.015083918027835902,
		0.0051010003604075429,
		-0.0064877345603157454,
		-0.00024175649076162427,
		0.0019433239803822114,
		-0.00037348235413761698,
		-0.00035956524436246879,
		0.00015589648992059973,
		2.5792699155318936e-5,
		-2.8133296266047814e-5,
		3.36298718173758e-6,
		1.8112704079405772e-6,
		-6.3168823258816645e-7,
		6.133359913305752e-8,
	},
}
