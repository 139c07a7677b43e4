package seed

import "survivalskills/internal/models"

func catID(categories map[string]*models.Category, slug string) *uint {
	if cat, ok := categories[slug]; ok {
		return &cat.ID
	}
	return nil
}

// baselinePosts is the editorial launch catalog: the flagship emergency
// fund and meal planning guides in all four regional editions, plus the
// evergreen US articles.
func baselinePosts(categories map[string]*models.Category) []*models.Post {
	return []*models.Post{
		{
			Title:           "How to Build a $1,000 Emergency Fund in Just 30 Days",
			Slug:            "how-to-build-1000-emergency-fund-in-30-days",
			Excerpt:         "Discover the exact step-by-step system that helped over 10,000 families build their first emergency fund quickly. Includes printable budget worksheets, side hustle ideas, and money-saving challenges.",
			Content:         "Building your first emergency fund can feel overwhelming, but with the right strategy, you can save $1,000 in just 30 days. This comprehensive guide will show you exactly how to do it...",
			MetaDescription: "Learn how to build a $1000 emergency fund in 30 days with proven strategies, side hustles, and money-saving tips. Start your financial security today.",
			Keywords:        "emergency fund, save money fast, financial security, budget",
			CategoryID:      catID(categories, "emergency-fund"),
			ImageURL:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ImageAlt:        "Person organizing budget spreadsheet with emergency supplies",
			ReadTime:        8,
			Views:           2847,
			Featured:        true,
			Published:       true,
			Region:          models.RegionUS,
		},
		{
			Title:           "How to Build a £1,000 Emergency Fund in Just 30 Days",
			Slug:            "how-to-build-1000-pound-emergency-fund-in-30-days-uk",
			Excerpt:         "Discover the exact step-by-step system that helped over 10,000 British families build their first emergency fund quickly. Includes budget worksheets, side hustle ideas, and money-saving challenges using ISAs and UK banks.",
			Content:         "Building your first emergency fund can feel overwhelming, especially with rising costs in the UK. With the right strategy, you can save £1,000 in just 30 days using UK-specific methods. This guide shows you how to maximize UK savings accounts, ISAs, and cash back schemes.",
			MetaDescription: "Learn how to build a £1000 emergency fund in 30 days with UK-specific strategies, ISAs, side hustles, and money-saving tips for British families.",
			Keywords:        "emergency fund UK, save money UK, ISA savings, British financial security",
			CategoryID:      catID(categories, "emergency-fund"),
			ImageURL:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ImageAlt:        "British person organizing budget spreadsheet with emergency supplies",
			ReadTime:        8,
			Views:           1847,
			Featured:        true,
			Published:       true,
			Region:          models.RegionUK,
		},
		{
			Title:           "How to Build a $1,500 Emergency Fund in Just 30 Days (Australia)",
			Slug:            "how-to-build-1500-dollar-emergency-fund-in-30-days-australia",
			Excerpt:         "Discover the exact step-by-step system that helped over 10,000 Aussie families build their first emergency fund quickly. Includes budget worksheets, side hustle ideas, and money-saving challenges using Australian banks and government programs.",
			Content:         "Building your first emergency fund can feel overwhelming, especially with Australia's high cost of living. With the right strategy, you can save $1,500 AUD in just 30 days using Australia-specific methods. This guide shows you how to maximize Australian savings accounts, government benefits, and local opportunities.",
			MetaDescription: "Learn how to build a $1500 AUD emergency fund in 30 days with Australia-specific strategies, high-interest accounts, and money-saving tips for Aussie families.",
			Keywords:        "emergency fund Australia, save money Australia, Australian banks, financial security AUD",
			CategoryID:      catID(categories, "emergency-fund"),
			ImageURL:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ImageAlt:        "Australian person organizing budget spreadsheet with emergency supplies",
			ReadTime:        8,
			Views:           1647,
			Featured:        true,
			Published:       true,
			Region:          models.RegionAU,
		},
		{
			Title:           "How to Build a $1,400 Emergency Fund in Just 30 Days (Canada)",
			Slug:            "how-to-build-1400-dollar-emergency-fund-in-30-days-canada",
			Excerpt:         "Discover the exact step-by-step system that helped over 10,000 Canadian families build their first emergency fund quickly. Includes budget worksheets, side hustle ideas, and money-saving challenges using TFSAs and Canadian banks.",
			Content:         "Building your first emergency fund can feel overwhelming, especially with Canada's rising costs. With the right strategy, you can save $1,400 CAD in just 30 days using Canada-specific methods. This guide shows you how to maximize Canadian savings accounts, TFSAs, and government programs.",
			MetaDescription: "Learn how to build a $1400 CAD emergency fund in 30 days with Canada-specific strategies, TFSAs, side hustles, and money-saving tips for Canadian families.",
			Keywords:        "emergency fund Canada, save money Canada, TFSA savings, Canadian financial security",
			CategoryID:      catID(categories, "emergency-fund"),
			ImageURL:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&h=600",
			ImageAlt:        "Canadian person organizing budget spreadsheet with emergency supplies",
			ReadTime:        8,
			Views:           1547,
			Featured:        true,
			Published:       true,
			Region:          models.RegionCA,
		},
		{
			Title:           "How to Feed a Family of 4 for $50 Per Week",
			Slug:            "feed-family-of-4-for-50-dollars-per-week",
			Excerpt:         "Complete meal planning system with shopping lists, batch cooking tips, and 28 budget-friendly recipes that will transform your grocery budget.",
			Content:         "Feeding a family on a tight budget doesn't mean sacrificing nutrition or taste. Here's how to create delicious, healthy meals for just $50 per week...",
			MetaDescription: "Feed your family of 4 for only $50 per week with our complete meal planning guide, shopping lists, and budget-friendly recipes.",
			Keywords:        "meal planning, budget meals, cheap family meals, grocery budget",
			CategoryID:      catID(categories, "meal-planning"),
			ImageURL:        "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Budget meal prep with affordable ingredients",
			ReadTime:        6,
			Views:           1823,
			Published:       true,
			Region:          models.RegionUS,
		},
		{
			Title:           "How to Feed a Family of 4 for £35 Per Week (UK)",
			Slug:            "feed-family-of-4-for-35-pounds-per-week-uk",
			Excerpt:         "Complete UK meal planning system using Tesco, ASDA, and Lidl. Includes shopping lists, batch cooking tips, and 28 British budget-friendly recipes.",
			Content:         "Feeding a family on a tight budget in the UK doesn't mean sacrificing nutrition. Here's how to create delicious meals for just £35 per week using UK supermarkets. Focus on UK staples and seasonal vegetables from Lidl and Aldi, use Tesco Clubcard prices, and plan meals around reduced sections and yellow sticker items.",
			MetaDescription: "Feed your family of 4 for only £35 per week with UK-specific meal planning, Tesco deals, and British budget-friendly recipes.",
			Keywords:        "meal planning UK, budget meals Britain, cheap family meals UK, Tesco budget",
			CategoryID:      catID(categories, "meal-planning"),
			ImageURL:        "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "UK budget meal prep with British ingredients",
			ReadTime:        6,
			Views:           1523,
			Published:       true,
			Region:          models.RegionUK,
		},
		{
			Title:           "How to Feed a Family of 4 for $75 AUD Per Week (Australia)",
			Slug:            "feed-family-of-4-for-75-dollars-aud-per-week-australia",
			Excerpt:         "Complete Australian meal planning system using Coles, Woolworths, and ALDI. Includes shopping lists, batch cooking tips, and 28 Aussie budget-friendly recipes.",
			Content:         "Feeding a family on a tight budget in Australia requires smart shopping strategies. Here's how to create nutritious meals for $75 AUD per week using Australian supermarkets. Take advantage of weekly specials, ALDI Special Buys, and seasonal Australian produce.",
			MetaDescription: "Feed your family of 4 for only $75 AUD per week with Australia-specific meal planning, Coles deals, and Aussie budget-friendly recipes.",
			Keywords:        "meal planning Australia, budget meals AUD, cheap family meals Australia, Coles Woolworths budget",
			CategoryID:      catID(categories, "meal-planning"),
			ImageURL:        "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Australian budget meal prep with local ingredients",
			ReadTime:        6,
			Views:           1423,
			Published:       true,
			Region:          models.RegionAU,
		},
		{
			Title:           "How to Feed a Family of 4 for $70 CAD Per Week (Canada)",
			Slug:            "feed-family-of-4-for-70-dollars-cad-per-week-canada",
			Excerpt:         "Complete Canadian meal planning system using Loblaws, Metro, and No Frills. Includes shopping lists, batch cooking tips, and 28 Canadian budget-friendly recipes.",
			Content:         "Feeding a family on a tight budget in Canada requires strategic planning due to higher food costs. Here's how to create nutritious meals for $70 CAD per week using Canadian supermarkets. Take advantage of PC Optimum points, Loblaws sales, and No Frills pricing.",
			MetaDescription: "Feed your family of 4 for only $70 CAD per week with Canada-specific meal planning, Loblaws deals, and Canadian budget-friendly recipes.",
			Keywords:        "meal planning Canada, budget meals CAD, cheap family meals Canada, Loblaws PC Optimum budget",
			CategoryID:      catID(categories, "meal-planning"),
			ImageURL:        "https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Canadian budget meal prep with local ingredients",
			ReadTime:        6,
			Views:           1323,
			Published:       true,
			Region:          models.RegionCA,
		},
		{
			Title:           "Extreme Couponing for Beginners: Save $200+ Monthly",
			Slug:            "extreme-couponing-beginners-guide-2024",
			Excerpt:         "Master the art of strategic couponing with apps, store policies, and stacking techniques that actually work in 2024.",
			Content:         "Extreme couponing isn't just for TV shows. With the right strategy, you can save hundreds every month on groceries and household items...",
			MetaDescription: "Learn extreme couponing strategies for beginners and save $200+ monthly with apps, store policies, and proven stacking techniques.",
			Keywords:        "extreme couponing, save money shopping, coupon apps, grocery savings",
			CategoryID:      catID(categories, "frugal-living"),
			ImageURL:        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Smart shopping with coupons and price comparison",
			ReadTime:        7,
			Views:           1542,
			Published:       true,
			Region:          models.RegionUS,
		},
		{
			Title:           "Build a 72-Hour Emergency Kit for Under $100",
			Slug:            "72-hour-emergency-kit-under-100-dollars",
			Excerpt:         "Essential items checklist, where to buy them cheap, and how to organize your emergency supplies for maximum effectiveness.",
			Content:         "A well-prepared 72-hour emergency kit doesn't have to break the bank. Here's how to build one for under $100 that will keep your family safe...",
			MetaDescription: "Build a complete 72-hour emergency kit for under $100. Includes essential items checklist and money-saving tips for emergency preparedness.",
			Keywords:        "emergency kit, disaster preparedness, survival supplies, emergency planning",
			CategoryID:      catID(categories, "preparedness"),
			ImageURL:        "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Well-organized emergency supply kit on shelves",
			ReadTime:        5,
			Views:           982,
			Published:       true,
			Region:          models.RegionUS,
		},
		{
			Title:           "15 Side Hustles That Can Earn You $500+ Monthly",
			Slug:            "15-side-hustles-earn-500-extra-monthly",
			Excerpt:         "Proven side hustle ideas that require minimal startup costs but can generate substantial extra income for your emergency fund.",
			Content:         "Building your emergency fund faster requires extra income. These 15 side hustles can help you earn $500 or more each month...",
			MetaDescription: "Discover 15 proven side hustles that can earn you $500+ monthly. Low startup costs, high earning potential for building your emergency fund.",
			Keywords:        "side hustles, extra income, make money online, passive income",
			CategoryID:      catID(categories, "side-hustles"),
			ImageURL:        "https://images.unsplash.com/photo-1517077304055-6e89abbf09b0?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Person working on side hustle from home office",
			ReadTime:        9,
			Views:           2156,
			Published:       true,
			Region:          models.RegionUS,
		},
		{
			Title:           "How to Save $5,000 in 6 Months: The Complete Action Plan",
			Slug:            "save-5000-dollars-in-6-months-action-plan",
			Excerpt:         "Follow this proven 6-month savings challenge with weekly goals, expense-cutting strategies, and income-boosting tactics that helped 500+ families save $5,000 fast.",
			Content:         "Saving $5,000 in just 6 months might seem impossible, but with the right strategy and commitment, it's absolutely achievable. This comprehensive plan breaks down exactly how to save $833 per month through a combination of expense reduction and income increase...",
			MetaDescription: "Save $5,000 in 6 months with this proven action plan. Weekly goals, expense-cutting strategies, and income-boosting tactics that actually work.",
			Keywords:        "save money fast, 6 month savings challenge, emergency fund, financial goals",
			CategoryID:      catID(categories, "emergency-fund"),
			ImageURL:        "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Calculator and savings tracker showing financial progress",
			ReadTime:        10,
			Views:           1245,
			Published:       true,
			Region:          models.RegionUS,
		},
		{
			Title:           "Pay Off $10K Debt in 12 Months: The Aggressive Payoff Strategy",
			Slug:            "pay-off-10k-debt-in-12-months-strategy",
			Excerpt:         "Eliminate $10,000 in debt within 12 months using the aggressive payoff method, debt consolidation strategies, and income maximization techniques.",
			Content:         "Paying off $10,000 in debt requires paying approximately $833 per month, but strategic approaches can make this achievable even on modest incomes...",
			MetaDescription: "Pay off $10,000 debt in 12 months with aggressive strategies, debt consolidation tips, and income maximization techniques that work.",
			Keywords:        "debt payoff, eliminate debt fast, debt snowball, debt consolidation strategies",
			CategoryID:      catID(categories, "debt-payoff"),
			ImageURL:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?ixlib=rb-4.0.3&auto=format&fit=crop&w=600&h=300",
			ImageAlt:        "Person cutting up credit cards and planning debt payoff strategy",
			ReadTime:        9,
			Views:           2187,
			Published:       true,
			Region:          models.RegionUS,
		},
	}
}
