// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package compass

// Canonical question bank, 12 economic and 12 social statements.
// Agreeing with a non-reversed economic statement moves right; agreeing
// with a non-reversed social statement moves toward authoritarian.
var bank = []Question{
	{ID: 1, Category: Economic, Text: LocalizedText{
		EN: "A company should be able to hire and fire employees without government interference.",
		SI: "සමාගමකට රජයේ මැදිහත්වීමකින් තොරව සේවකයන් බඳවා ගැනීමට සහ සේවයෙන් පහ කිරීමට හැකි විය යුතුය.",
	}},
	{ID: 2, Category: Economic, Text: LocalizedText{
		EN: "Free markets should be regulated to protect workers and consumers.",
		SI: "කම්කරුවන් සහ පාරිභෝගිකයන් ආරක්ෂා කිරීම සඳහා නිදහස් වෙලඳපල නියාමනය කළ යුතුය.",
	}, Reversed: true},
	{ID: 3, Category: Economic, Text: LocalizedText{
		EN: "Private healthcare is more efficient than government-run healthcare.",
		SI: "රජය විසින් පවත්වාගෙන යනු ලබන සෞඛ්‍ය සේවාවට වඩා පුද්ගලික සෞඛ්‍ය සේවාව වඩා කාර්යක්ෂම ය.",
	}},
	{ID: 4, Category: Economic, Text: LocalizedText{
		EN: "The government should provide universal basic income to all citizens.",
		SI: "රජය සියලුම පුරවැසියන්ට විශ්වීය මූලික ආදායමක් ලබා දිය යුතුය.",
	}, Reversed: true},
	{ID: 5, Category: Economic, Text: LocalizedText{
		EN: "High taxes on the wealthy are necessary for a fair society.",
		SI: "සාධාරණ සමාජයක් සඳහා ධනවතුන්ට ඉහළ බදු අවශ්‍ය වේ.",
	}, Reversed: true},
	{ID: 6, Category: Economic, Text: LocalizedText{
		EN: "Private property rights are fundamental to economic freedom.",
		SI: "ආර්ථික නිදහස සඳහා පුද්ගලික දේපල අයිතිවාසිකම් මූලික වේ.",
	}},
	{ID: 7, Category: Economic, Text: LocalizedText{
		EN: "Labor unions do more harm than good to the economy.",
		SI: "කම්කරු සංගම් ආර්ථිකයට යහපත්ට වඩා අහිතකර ය.",
	}},
	{ID: 8, Category: Economic, Text: LocalizedText{
		EN: "The government should own and control major industries.",
		SI: "රජය ප්‍රධාන කර්මාන්ත හිමි කර ගෙන පාලනය කළ යුතුය.",
	}, Reversed: true},
	{ID: 9, Category: Economic, Text: LocalizedText{
		EN: "Free trade benefits all countries involved.",
		SI: "නිදහස් වෙළඳාම සම්බන්ධ සියලුම රටවලට ප්‍රයෝජනවත් වේ.",
	}},
	{ID: 10, Category: Economic, Text: LocalizedText{
		EN: "Economic inequality is a necessary part of a competitive society.",
		SI: "ආර්ථික අසමානතාවය තරඟකාරී සමාජයක අත්‍යවශ්‍ය කොටසකි.",
	}},
	{ID: 11, Category: Economic, Text: LocalizedText{
		EN: "The minimum wage should be abolished to allow market forces to work.",
		SI: "වෙළඳපල බලවේගයන්ට ක්‍රියා කිරීමට ඉඩ දීම සඳහා අවම වැටුප අහෝසි කළ යුතුය.",
	}},
	{ID: 12, Category: Economic, Text: LocalizedText{
		EN: "Government spending on social programs should be increased.",
		SI: "සමාජ වැඩසටහන් සඳහා රජයේ වියදම් වැඩි කළ යුතුය.",
	}, Reversed: true},
	{ID: 13, Category: Social, Text: LocalizedText{
		EN: "The government should have the right to monitor private communications for security purposes.",
		SI: "ආරක්ෂක අරමුණු සඳහා පුද්ගලික සන්නිවේදනයන් අධීක්ෂණය කිරීමේ අයිතිය රජයට තිබිය යුතුය.",
	}},
	{ID: 14, Category: Social, Text: LocalizedText{
		EN: "Individual freedom should be prioritized over collective security.",
		SI: "සාමූහික ආරක්ෂාවට වඩා පුද්ගල නිදහසට ප්‍රමුඛත්වය දිය යුතුය.",
	}, Reversed: true},
	{ID: 15, Category: Social, Text: LocalizedText{
		EN: "Traditional values should be preserved and promoted by society.",
		SI: "සම්ප්‍රදායික වටිනාකම් සමාජය විසින් සංරක්ෂණය කර ප්‍රවර්ධනය කළ යුතුය.",
	}},
	{ID: 16, Category: Social, Text: LocalizedText{
		EN: "People should be free to live their lives as they choose, even if it goes against social norms.",
		SI: "එය සමාජ සාමාන්‍යයන්ට විරුද්ධ වුවද මිනිසුන්ට තමන් කැමති ආකාරයට ජීවත් වීමට නිදහස තිබිය යුතුය.",
	}, Reversed: true},
	{ID: 17, Category: Social, Text: LocalizedText{
		EN: "Strict law enforcement is necessary to maintain social order.",
		SI: "සමාජ සාමය පවත්වා ගැනීම සඳහා දැඩි නීති ක්‍රියාත්මක කිරීම අවශ්‍ය වේ.",
	}},
	{ID: 18, Category: Social, Text: LocalizedText{
		EN: "Censorship of offensive content in media is sometimes justified.",
		SI: "මාධ්‍යයේ අහිතකර අන්තර්ගත වාරණය කිරීම සමහර විට යුක්ති සහගත ය.",
	}},
	{ID: 19, Category: Social, Text: LocalizedText{
		EN: "Religious beliefs should not influence government policy.",
		SI: "ආගමික විශ්වාස රජයේ ප්‍රතිපත්තිවලට බලපාන්නේ නැත.",
	}, Reversed: true},
	{ID: 20, Category: Social, Text: LocalizedText{
		EN: "Citizens should accept government authority without question.",
		SI: "පුරවැසියන් ප්‍රශ්න නොකර රජයේ අධිකාරිත්වය පිළිගත යුතුය.",
	}},
	{ID: 21, Category: Social, Text: LocalizedText{
		EN: "Civil disobedience is acceptable when laws are unjust.",
		SI: "නීති අසාධාරණ වූ විට සිවිල් අකීකරුකම පිළිගත හැකිය.",
	}, Reversed: true},
	{ID: 22, Category: Social, Text: LocalizedText{
		EN: "The death penalty is an appropriate punishment for serious crimes.",
		SI: "බරපතළ අපරාධ සඳහා මරණ දණුවම සුදුසු දඬුවමකි.",
	}},
	{ID: 23, Category: Social, Text: LocalizedText{
		EN: "Immigration should be strictly controlled to preserve national identity.",
		SI: "ජාතික අනන්‍යතාවය ආරක්ෂා කිරීම සඳහා ආගමනය දැඩි ලෙස පාලනය කළ යුතුය.",
	}},
	{ID: 24, Category: Social, Text: LocalizedText{
		EN: "Personal drug use should be decriminalized.",
		SI: "පුද්ගලික මත්ද්‍රව්‍ය භාවිතය අපරාධකරණයෙන් ඉවත් කළ යුතුය.",
	}, Reversed: true},
}
