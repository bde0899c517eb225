// 几何计算工具，提供传感器模拟所需的线段求交运算
package geomutil

import (
	"git.fiblab.net/general/common/v2/geometry"
)

// SegmentsIntersect 判断两条线段是否相交
// 功能：基于行列式的参数化直线求交公式，判断线段p1-p2与线段p3-p4是否在两条线段范围内相交
// 参数：p1、p2-第一条线段的端点，p3、p4-第二条线段的端点
// 返回：true表示相交，false表示不相交
// 算法说明：
// 1. 计算两条线段方向向量构成的行列式
// 2. 行列式恰为零（平行或共线）时直接返回不相交
// 3. 求解参数t、u，两者均落在[0,1]内则判定相交
// 说明：平行且重叠的线段被报告为不相交，这是有意保留的简化处理，不做共线重叠检测
func SegmentsIntersect(p1, p2, p3, p4 geometry.Point) bool {
	d := (p2.X-p1.X)*(p4.Y-p3.Y) - (p2.Y-p1.Y)*(p4.X-p3.X)
	if d == 0 {
		// 平行/共线，按不相交处理
		return false
	}
	t := ((p3.X-p1.X)*(p4.Y-p3.Y) - (p3.Y-p1.Y)*(p4.X-p3.X)) / d
	u := ((p3.X-p1.X)*(p2.Y-p1.Y) - (p3.Y-p1.Y)*(p2.X-p1.X)) / d
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
