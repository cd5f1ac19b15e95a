// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

// DefaultAvatar is used when a saved result has no avatar.
const DefaultAvatar = "anura.jpg"

type Avatar struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Name     string `json:"name"`
}

var avatars = []Avatar{
	{ID: "anura", Filename: "anura.jpg", Name: "Anura Kumara Dissanayake"},
	{ID: "anurudda", Filename: "anurudda.jpg", Name: "Anurudda"},
	{ID: "bruno", Filename: "bruno.jpeg", Name: "Bruno Diwakara"},
	{ID: "carlo", Filename: "carlo.jpg", Name: "Carlo"},
	{ID: "chinthana", Filename: "chinthana.jpg", Name: "Chinthana Dharmadasa"},
	{ID: "dayan", Filename: "dayan.jpg", Name: "Dayan Jayatilleka"},
	{ID: "deepthi", Filename: "deepthi.jpg", Name: "Deepthi Kumara"},
	{ID: "eranda", Filename: "eranda.jpg", Name: "Eranda Ginige"},
	{ID: "harini", Filename: "harini.jpg", Name: "Harini Amarasooriya"},
	{ID: "iraj", Filename: "iraj.jpg", Name: "Iraj"},
	{ID: "jr", Filename: "JR.jpg", Name: "J.R. Jayewardene"},
	{ID: "mahinda", Filename: "mahinda.jpeg", Name: "Mahinda Rajapaksa"},
	{ID: "mathini", Filename: "mathini.jpg", Name: "Mathini"},
	{ID: "melani", Filename: "melani.jpeg", Name: "Melani Gunathilake"},
	{ID: "nalin", Filename: "nalin.jpg", Name: "Nalin De Silva"},
	{ID: "nirmal", Filename: "nirmal_dewasiri.jpg", Name: "Nirmal Dewasiri"},
	{ID: "pubudu", Filename: "pubudu_jagoda.jpg", Name: "Pubudu Jagoda"},
	{ID: "ranil", Filename: "ranil.jpg", Name: "Ranil Wickremesinghe"},
	{ID: "sajith", Filename: "sajithpremadasa.jpg", Name: "Sajith Premadasa"},
	{ID: "sandakath", Filename: "sandakath.jpg", Name: "Sandakath Mahagamaarachchi"},
	{ID: "sarath", Filename: "Sarath_Wijesuriya.jpg", Name: "Sarath Wijesuriya"},
	{ID: "shiral", Filename: "shiral_lakthilaka.jpg", Name: "Shiral Lakthilaka"},
	{ID: "swrd", Filename: "swrd.jpg", Name: "S.W.R.D. Bandaranaike"},
	{ID: "thamalu", Filename: "thamalu.jpg", Name: "Thamalu Piyadigama"},
	{ID: "tilvin", Filename: "tilvin.jpg", Name: "Tilvin Perera"},
	{ID: "upali", Filename: "upali_kohomban.jpg", Name: "Upali Kohomban"},
	{ID: "wangeesa", Filename: "wangeesa.jpeg", Name: "Wangeesa Sumanasekara"},
	{ID: "wimal", Filename: "wimal_weerawansa.jpg", Name: "Wimal Weerawansa"},
}

func Avatars() []Avatar {
	out := make([]Avatar, len(avatars))
	copy(out, avatars)
	return out
}

func AvatarByID(id string) (Avatar, bool) {
	for _, a := range avatars {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}

func AvatarByFilename(filename string) (Avatar, bool) {
	for _, a := range avatars {
		if a.Filename == filename {
			return a, true
		}
	}
	return Avatar{}, false
}

// AvatarURL is the public path of an avatar image.
func AvatarURL(filename string) string {
	return "/people/" + filename
}
